// Package main provides a CLI tool for seeding the database with
// demo data for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"avtoservice/internal/config"
	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/catalogs/car"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/domain/catalogs/employee"
	"avtoservice/internal/domain/catalogs/sklad"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/internal/infrastructure/storage/postgres"
	"avtoservice/internal/infrastructure/storage/postgres/catalog_repo"
	"avtoservice/internal/infrastructure/storage/postgres/document_repo"
	"avtoservice/pkg/logger"
	"avtoservice/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)

	customerRepo := catalog_repo.NewCustomerRepo(txm)
	customerService := customer.NewService(customerRepo, txm)
	carService := car.NewService(catalog_repo.NewCarRepo(txm), txm, customerRepo.Exists)
	skladService := sklad.NewService(catalog_repo.NewSkladRepo(txm), txm)
	employeeService := employee.NewService(catalog_repo.NewEmployeeRepo(txm), txm)
	orderService := order.NewService(document_repo.NewOrderRepo(txm), numerator.New(txm), txm)

	firstCustomer, err := seedCustomers(ctx, customerService, log)
	if err != nil {
		log.Fatalw("failed to seed customers", "error", err)
	}

	firstCar, err := seedCars(ctx, carService, firstCustomer, log)
	if err != nil {
		log.Fatalw("failed to seed cars", "error", err)
	}

	if err := seedSklad(ctx, skladService, log); err != nil {
		log.Fatalw("failed to seed stock items", "error", err)
	}

	if err := seedEmployees(ctx, employeeService, log); err != nil {
		log.Fatalw("failed to seed employees", "error", err)
	}

	if os.Getenv("SEED_DEMO_ORDER") == "true" {
		if err := seedDemoOrder(ctx, orderService, firstCustomer, firstCar, log); err != nil {
			log.Fatalw("failed to seed demo order", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedCustomers(ctx context.Context, svc *customer.Service, log *logger.Logger) (*customer.Customer, error) {
	seeds := []struct {
		name    string
		phone   string
		bulstat string
		mol     string
	}{
		{"Иван Петров", "0888123456", "", ""},
		{"Мария Георгиева", "0899654321", "", ""},
		{"Транс Логистик ЕООД", "029876543", "123456789", "Георги Димитров"},
	}

	var first *customer.Customer
	for _, s := range seeds {
		if s.bulstat != "" {
			existing, err := svc.FindByBulstat(ctx, s.bulstat)
			if err == nil {
				log.Infow("customer already exists", "name", existing.Name)
				if first == nil {
					first = existing
				}
				continue
			}
			if !apperror.IsNotFound(err) {
				return nil, err
			}
		}

		c := customer.NewCustomer(s.name)
		if s.phone != "" {
			phone := s.phone
			c.Phone = &phone
		}
		if s.bulstat != "" {
			bulstat := s.bulstat
			mol := s.mol
			c.Bulstat = &bulstat
			c.MOL = &mol
			c.DocType = customer.DocTypeCompany
		}

		if err := svc.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("create customer %q: %w", s.name, err)
		}
		log.Infow("customer seeded", "name", c.Name, "number", c.Number)
		if first == nil {
			first = c
		}
	}
	return first, nil
}

func seedCars(ctx context.Context, svc *car.Service, owner *customer.Customer, log *logger.Logger) (*car.Car, error) {
	existing, err := svc.ListByCustomer(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Infow("cars already exist for customer", "customer", owner.Name)
		return existing[0], nil
	}

	seeds := []struct {
		brand, model, plate, vin string
		year                     int
	}{
		{"Peugeot", "308", "CA1234BX", "VF3LCYHZPFS123456", 2016},
		{"Renault", "Clio", "CA5678KH", "VF1RFA00X61234567", 2019},
	}

	var first *car.Car
	for _, s := range seeds {
		c := car.NewCar(owner.ID, s.brand, s.model)
		c.Plate = s.plate
		c.VIN = s.vin
		year := s.year
		c.Year = &year

		if err := svc.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("create car %s %s: %w", s.brand, s.model, err)
		}
		log.Infow("car seeded", "car", c.DisplayName(), "plate", c.Plate)
		if first == nil {
			first = c
		}
	}
	return first, nil
}

func seedSklad(ctx context.Context, svc *sklad.Service, log *logger.Logger) error {
	seeds := []struct {
		article, name, qty, price string
	}{
		{"OC-90915", "Маслен филтър Toyota", "12", "8.50"},
		{"BP-1234", "Накладки предни Peugeot 308", "6", "42.00"},
		{"5W30-4L", "Масло 5W30 4л", "20.5", "54.90"},
		{"WB-450", "Чистачка 450мм", "15", "11.20"},
		{"SP-NGK7", "Свещ NGK BKR7E", "40", "6.80"},
	}

	for _, s := range seeds {
		_, err := svc.FindByArticleNumber(ctx, s.article)
		if err == nil {
			log.Infow("stock item already exists", "article", s.article)
			continue
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		item := sklad.NewItem(s.article, s.name)
		item.Quantity = types.MustMoney(s.qty)
		item.PurchasePrice = types.MustMoney(s.price)

		if err := svc.Create(ctx, item); err != nil {
			return fmt.Errorf("create stock item %q: %w", s.article, err)
		}
		log.Infow("stock item seeded", "article", item.ArticleNumber, "name", item.Name)
	}
	return nil
}

func seedEmployees(ctx context.Context, svc *employee.Service, log *logger.Logger) error {
	seeds := []struct {
		first, last, rate string
	}{
		{"Стоян", "Колев", "25.00"},
		{"Димитър", "Иванов", "25.00"},
		{"Елена", "Тодорова", "18.00"},
	}

	for _, s := range seeds {
		e := employee.NewEmployee(s.first, s.last)
		e.HourlyRate = types.MustMoney(s.rate)

		if err := svc.Create(ctx, e); err != nil {
			// Idempotency via unique name is intentionally not
			// enforced for employees; warn and continue on rerun.
			log.Warnw("failed to seed employee", "name", e.FullName(), "error", err)
			continue
		}
		log.Infow("employee seeded", "name", e.FullName())
	}
	return nil
}

func seedDemoOrder(ctx context.Context, svc *order.Service, cust *customer.Customer, vehicle *car.Car, log *logger.Logger) error {
	doc := order.New()
	doc.CustomerID = &cust.ID
	doc.CarID = &vehicle.ID
	doc.Date = time.Now()
	doc.AddItem(order.Item{
		Name:          "Смяна на масло и филтри",
		PurchasePrice: types.MustMoney("30.00"),
		Quantity:      types.MustMoney("1"),
		IsLabor:       true,
	})
	doc.AddItem(order.Item{
		Name:          "Масло 5W30 4л",
		PurchasePrice: types.MustMoney("54.90"),
		Quantity:      types.MustMoney("1"),
	})

	if err := svc.Create(ctx, doc); err != nil {
		return err
	}

	log.Infow("demo order seeded", "number", doc.Number)
	return nil
}
