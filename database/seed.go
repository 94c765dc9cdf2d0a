package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	"github.com/sbmotors/dealership/utils/logger"
)

var sampleCars = []model.Car{
	{
		ID: "car-1", Make: "Maruti Suzuki", Model: "Swift", Year: 2020,
		Price: 550000, Mileage: 35000, Fuel: "Petrol", Transmission: "Manual",
		Owner: "1st Owner", Type: "hatchback",
		Description: "Well maintained single owner Swift with full service history.",
		Status:      constant.CarStatusAvailable,
	},
	{
		ID: "car-2", Make: "Hyundai", Model: "Creta", Year: 2021,
		Price: 1250000, Mileage: 22000, Fuel: "Diesel", Transmission: "Automatic",
		Owner: "1st Owner", Type: "suv",
		Description: "Top-end Creta SX(O) in excellent condition.",
		Status:      constant.CarStatusAvailable,
	},
	{
		ID: "car-3", Make: "Honda", Model: "City", Year: 2019,
		Price: 850000, Mileage: 41000, Fuel: "Petrol", Transmission: "Manual",
		Owner: "2nd Owner", Type: "sedan",
		Description: "Reliable family sedan, new tyres fitted recently.",
		Status:      constant.CarStatusAvailable,
	},
}

// Seed inserts starter inventory and the admin account on a fresh database.
// Each table is seeded only when empty, so restarts are safe.
func Seed(ctx context.Context, conn *sqlx.DB, adminPassword string) error {
	var carCount int64
	if err := conn.GetContext(ctx, &carCount, "SELECT COUNT(*) FROM cars"); err != nil {
		return err
	}
	if carCount == 0 {
		for i := range sampleCars {
			car := sampleCars[i]
			_, err := conn.ExecContext(ctx,
				`INSERT INTO cars (id, make, model, year, price, mileage, fuel, transmission, owner, type, image, description, status)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				car.ID, car.Make, car.Model, car.Year, car.Price, car.Mileage,
				car.Fuel, car.Transmission, car.Owner, car.Type, car.Image,
				car.Description, car.Status)
			if err != nil {
				return err
			}
		}
		logger.Info("seeded sample inventory", zap.Int("cars", len(sampleCars)))
	}

	var employeeCount int64
	if err := conn.GetContext(ctx, &employeeCount, "SELECT COUNT(*) FROM employees"); err != nil {
		return err
	}
	if employeeCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = conn.ExecContext(ctx,
			"INSERT INTO employees (username, password_hash, name) VALUES (?, ?, ?)",
			constant.AdminUsername, string(hash), "Administrator")
		if err != nil {
			return err
		}
		logger.Info("seeded admin account", zap.String("username", constant.AdminUsername))
	}

	return nil
}
