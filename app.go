package main

import (
	"MediBook/config/authorization"
	"MediBook/config/db"
	"MediBook/config/jwt"
	"MediBook/controllers"
	"MediBook/repository"
	"MediBook/repository/memory"
	"MediBook/server"
	"MediBook/services"
	"MediBook/util"
)

type application struct {
	controller *controllers.Controller
	bookings   *services.BookingService
	guards     authorization.Guards
}

// newApplication wires services over Mongo when the server connected to it
// and over the in-memory stores otherwise.
func newApplication(infra *server.Infra) *application {
	cfg := infra.Config
	issuer := jwt.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var (
		accounts      services.AccountStore
		doctors       services.DoctorStore
		bookings      services.BookingStore
		prescriptions services.PrescriptionStore
		counters      services.Sequencer
	)
	if infra.Database != nil {
		accounts = repository.NewAccountRepository(db.OpenCollections(util.RegisterCollection))
		doctors = repository.NewDoctorRepository(db.OpenCollections(util.DoctorCollection))
		bookings = repository.NewBookingRepository(db.OpenCollections(util.BookingCollection))
		prescriptions = repository.NewPrescriptionRepository(db.OpenCollections(util.PrescriptionCollection))
		counters = repository.NewCounterRepository(db.OpenCollections(util.CounterCollection))
	} else {
		accounts = memory.NewAccounts()
		doctors = memory.NewDoctors()
		bookings = memory.NewBookings()
		prescriptions = memory.NewPrescriptions()
		counters = memory.NewCounters()
	}

	bookingService := services.NewBookingService(bookings, counters, infra.Publisher)
	return &application{
		controller: &controllers.Controller{
			Auth:          services.NewAuthService(accounts, issuer, cfg.BcryptCost),
			Doctors:       services.NewDoctorService(doctors, infra.Cache),
			Bookings:      bookingService,
			Prescriptions: services.NewPrescriptionService(prescriptions),
		},
		bookings: bookingService,
		guards:   authorization.NewGuards(authorization.JWTAuth(issuer), cfg.LegacyOpenRoutes),
	}
}
