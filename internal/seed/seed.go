// Package seed ships a small sample shop used for demos and manual
// testing. Seeding only runs when every collection is empty, so it never
// clobbers real data.
package seed

import (
	"context"
	"time"

	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	"github.com/garagekit/garagekit/internal/store"
	vehicledomain "github.com/garagekit/garagekit/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	KV         store.KV
	Log        *zap.Logger
	Inventory  invdomain.Service
	Vehicles   vehicledomain.Service
	ServiceLog svcdomain.Service
}

type Seeder struct {
	kv         store.KV
	log        *zap.Logger
	inventory  invdomain.Service
	vehicles   vehicledomain.Service
	servicelog svcdomain.Service
}

func NewSeeder(p Params) *Seeder {
	return &Seeder{
		kv:         p.KV,
		log:        p.Log.Named("seed"),
		inventory:  p.Inventory,
		vehicles:   p.Vehicles,
		servicelog: p.ServiceLog,
	}
}

// EnsureSampleData loads the bundled sample shop when all three
// collections are empty. Collections must already be loaded.
func (s *Seeder) EnsureSampleData(ctx context.Context) error {
	if len(s.inventory.Parts()) > 0 || len(s.vehicles.Vehicles()) > 0 || len(s.servicelog.Records()) > 0 {
		return nil
	}
	return s.ResetToSample(ctx)
}

// ResetToSample replaces every collection with the bundled sample shop.
func (s *Seeder) ResetToSample(ctx context.Context) error {
	if err := s.inventory.Replace(ctx, SampleParts()); err != nil {
		return err
	}
	if err := s.vehicles.Replace(ctx, SampleVehicles()); err != nil {
		return err
	}
	if err := s.servicelog.Replace(ctx, SampleServices()); err != nil {
		return err
	}
	s.log.Info("sample data loaded",
		zap.Int("parts", len(SampleParts())),
		zap.Int("vehicles", len(SampleVehicles())),
		zap.Int("services", len(SampleServices())))
	return nil
}

// ClearAll wipes every collection, including accounts and the signed-in
// user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	if err := s.inventory.Replace(ctx, nil); err != nil {
		return err
	}
	if err := s.vehicles.Replace(ctx, nil); err != nil {
		return err
	}
	if err := s.servicelog.Replace(ctx, nil); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, store.KeyUsers); err != nil {
		return err
	}
	return s.kv.Delete(ctx, store.KeyAuthUser)
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleParts returns the bundled inventory entries. Quantities are
// chosen so the dashboard shows a couple of low-stock rows out of the
// box.
func SampleParts() []invdomain.Part {
	return []invdomain.Part{
		{
			ID: "1", Name: "Engine Oil Filter", PartNumber: "OF-2024-001",
			Description: "High-performance oil filter for most vehicles",
			Price:       249000, Cost: 125000,
			StockQuantity: 45, OriginalQuantity: 50, MinStockLevel: 10,
			Supplier: "AutoParts Plus", Category: "Filters",
			CreatedAt: ts("2024-01-15T10:30:00Z"), UpdatedAt: ts("2024-12-28T14:20:00Z"), AddedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID: "2", Name: "Brake Pads - Front", PartNumber: "BP-F-2024-002",
			Description: "Ceramic brake pads for front wheels",
			Price:       899000, Cost: 450000,
			StockQuantity: 28, OriginalQuantity: 30, MinStockLevel: 5,
			Supplier: "BrakeTech Solutions", Category: "Brakes",
			CreatedAt: ts("2024-02-10T09:15:00Z"), UpdatedAt: ts("2024-12-27T16:45:00Z"), AddedAt: ts("2024-02-10T09:15:00Z"),
		},
		{
			ID: "3", Name: "Air Filter", PartNumber: "AF-2024-003",
			Description: "Engine air filter, universal fit",
			Price:       199000, Cost: 87500,
			StockQuantity: 62, OriginalQuantity: 75, MinStockLevel: 15,
			Supplier: "FilterMax Inc", Category: "Filters",
			CreatedAt: ts("2024-03-05T11:20:00Z"), UpdatedAt: ts("2024-12-29T08:30:00Z"), AddedAt: ts("2024-03-05T11:20:00Z"),
		},
		{
			ID: "4", Name: "Spark Plugs Set", PartNumber: "SP-SET-2024-004",
			Description: "Iridium spark plugs, set of 4",
			Price:       649000, Cost: 320000,
			StockQuantity: 18, OriginalQuantity: 25, MinStockLevel: 8,
			Supplier: "Ignition Pro", Category: "Engine",
			CreatedAt: ts("2024-04-12T13:45:00Z"), UpdatedAt: ts("2024-12-26T12:15:00Z"), AddedAt: ts("2024-04-12T13:45:00Z"),
		},
		{
			ID: "5", Name: "Transmission Fluid", PartNumber: "TF-2024-005",
			Description: "Synthetic transmission fluid, 1 quart",
			Price:       349000, Cost: 185000,
			StockQuantity: 35, OriginalQuantity: 40, MinStockLevel: 12,
			Supplier: "FluidTech Corp", Category: "Fluids",
			CreatedAt: ts("2024-05-08T15:30:00Z"), UpdatedAt: ts("2024-12-28T10:45:00Z"), AddedAt: ts("2024-05-08T15:30:00Z"),
		},
		{
			ID: "6", Name: "Windshield Wipers", PartNumber: "WW-2024-006",
			Description: "All-season windshield wipers, pair",
			Price:       429000, Cost: 210000,
			StockQuantity: 22, OriginalQuantity: 30, MinStockLevel: 6,
			Supplier: "ClearView Auto", Category: "Accessories",
			CreatedAt: ts("2024-06-15T09:00:00Z"), UpdatedAt: ts("2024-12-29T14:20:00Z"), AddedAt: ts("2024-06-15T09:00:00Z"),
		},
		{
			ID: "7", Name: "Battery - 12V", PartNumber: "BAT-12V-2024-007",
			Description: "Maintenance-free car battery 12V 70Ah",
			Price:       1499000, Cost: 750000,
			StockQuantity: 8, OriginalQuantity: 12, MinStockLevel: 3,
			Supplier: "PowerCell Industries", Category: "Electrical",
			CreatedAt: ts("2024-07-20T12:30:00Z"), UpdatedAt: ts("2024-12-27T11:10:00Z"), AddedAt: ts("2024-07-20T12:30:00Z"),
		},
		{
			ID: "8", Name: "Coolant - 1 Gallon", PartNumber: "CL-GAL-2024-008",
			Description: "Extended life antifreeze coolant",
			Price:       289000, Cost: 142500,
			StockQuantity: 41, OriginalQuantity: 50, MinStockLevel: 10,
			Supplier: "CoolFlow Systems", Category: "Fluids",
			CreatedAt: ts("2024-08-10T16:45:00Z"), UpdatedAt: ts("2024-12-28T13:55:00Z"), AddedAt: ts("2024-08-10T16:45:00Z"),
		},
		{
			ID: "9", Name: "Tire Pressure Sensor", PartNumber: "TPS-2024-009",
			Description: "TPMS sensor, universal fit",
			Price:       799000, Cost: 400000,
			StockQuantity: 15, OriginalQuantity: 20, MinStockLevel: 5,
			Supplier: "SensorTech Ltd", Category: "Sensors",
			CreatedAt: ts("2024-09-05T14:15:00Z"), UpdatedAt: ts("2024-12-26T15:30:00Z"), AddedAt: ts("2024-09-05T14:15:00Z"),
		},
		{
			ID: "10", Name: "Cabin Air Filter", PartNumber: "CAF-2024-010",
			Description: "HEPA cabin air filter with activated carbon",
			Price:       329000, Cost: 165000,
			StockQuantity: 33, OriginalQuantity: 40, MinStockLevel: 8,
			Supplier: "AirPure Automotive", Category: "Filters",
			CreatedAt: ts("2024-10-12T11:00:00Z"), UpdatedAt: ts("2024-12-29T09:45:00Z"), AddedAt: ts("2024-10-12T11:00:00Z"),
		},
	}
}

// SampleVehicles returns the bundled customer vehicles.
func SampleVehicles() []vehicledomain.Vehicle {
	return []vehicledomain.Vehicle{
		{
			ID: "1", Make: "Toyota", Model: "Camry", Year: 2022,
			VIN: "4T1C11AK5NU123456", LicensePlate: "ABC-1234",
			CustomerName: "John Smith", CustomerPhone: "(555) 123-4567", CustomerEmail: "john.smith@email.com",
			Odometer:  26430,
			CreatedAt: ts("2024-01-20T10:00:00Z"), UpdatedAt: ts("2024-12-28T14:30:00Z"),
		},
		{
			ID: "2", Make: "Honda", Model: "Civic", Year: 2021,
			VIN: "2HGFC2F59MH123789", LicensePlate: "XYZ-5678",
			CustomerName: "Sarah Johnson", CustomerPhone: "(555) 987-6543", CustomerEmail: "sarah.j@email.com",
			Odometer:  19750,
			CreatedAt: ts("2024-02-15T09:30:00Z"), UpdatedAt: ts("2024-12-27T16:20:00Z"),
		},
		{
			ID: "3", Make: "Ford", Model: "F-150", Year: 2023,
			VIN: "1FTFW1E50PFA12345", LicensePlate: "DEF-9012",
			CustomerName: "Mike Wilson", CustomerPhone: "(555) 456-7890", CustomerEmail: "mike.wilson@email.com",
			Odometer:  13890,
			CreatedAt: ts("2024-03-10T11:15:00Z"), UpdatedAt: ts("2024-12-29T10:45:00Z"),
		},
		{
			ID: "4", Make: "Chevrolet", Model: "Malibu", Year: 2020,
			VIN: "1G1ZD5ST5LF123456", LicensePlate: "GHI-3456",
			CustomerName: "Emily Davis", CustomerPhone: "(555) 234-5678", CustomerEmail: "emily.davis@email.com",
			Odometer:  46620,
			CreatedAt: ts("2024-04-05T13:20:00Z"), UpdatedAt: ts("2024-12-26T12:10:00Z"),
		},
		{
			ID: "5", Make: "Nissan", Model: "Altima", Year: 2022,
			VIN: "1N4BL4BV4NC123789", LicensePlate: "JKL-7890",
			CustomerName: "Robert Brown", CustomerPhone: "(555) 345-6789", CustomerEmail: "robert.brown@email.com",
			Odometer:  32250,
			CreatedAt: ts("2024-05-12T15:45:00Z"), UpdatedAt: ts("2024-12-28T11:30:00Z"),
		},
	}
}

// SampleServices returns the bundled service history.
func SampleServices() []svcdomain.ServiceRecord {
	return []svcdomain.ServiceRecord{
		{
			ID: "1", VehicleID: "1", Date: "2024-12-28", Odometer: 26430,
			Description: "Oil change and filter replacement",
			LaborHours:  1.5, LaborRate: 400000,
			Parts: []svcdomain.ServicePart{
				{PartID: "1", PartName: "Engine Oil Filter", Quantity: 1, UnitPrice: 249000, TotalPrice: 249000},
			},
			TotalCost: 849000, Status: svcdomain.StatusCompleted,
			Notes:     "Customer requested synthetic oil. Next service due at 30,000 miles.",
			CreatedAt: ts("2024-12-28T09:00:00Z"), UpdatedAt: ts("2024-12-28T10:30:00Z"),
		},
		{
			ID: "2", VehicleID: "2", Date: "2024-12-27", Odometer: 19750,
			Description: "Brake pad replacement - front",
			LaborHours:  3.0, LaborRate: 400000,
			Parts: []svcdomain.ServicePart{
				{PartID: "2", PartName: "Brake Pads - Front", Quantity: 1, UnitPrice: 899000, TotalPrice: 899000},
			},
			TotalCost: 2099000, Status: svcdomain.StatusCompleted,
			Notes:     "Brake rotors in good condition. Customer advised on brake fluid service.",
			CreatedAt: ts("2024-12-27T08:30:00Z"), UpdatedAt: ts("2024-12-27T12:15:00Z"),
		},
		{
			ID: "3", VehicleID: "3", Date: "2024-12-26", Odometer: 13890,
			Description: "Battery replacement and electrical system check",
			LaborHours:  2.0, LaborRate: 400000,
			Parts: []svcdomain.ServicePart{
				{PartID: "7", PartName: "Battery - 12V", Quantity: 1, UnitPrice: 1499000, TotalPrice: 1499000},
			},
			TotalCost: 2299000, Status: svcdomain.StatusCompleted,
			Notes:     "Old battery tested at 8.2V. Alternator and charging system tested OK.",
			CreatedAt: ts("2024-12-26T10:00:00Z"), UpdatedAt: ts("2024-12-26T14:45:00Z"),
		},
		{
			ID: "4", VehicleID: "4", Date: "2024-12-25", Odometer: 46620,
			Description: "Transmission service and fluid change",
			LaborHours:  2.5, LaborRate: 400000,
			Parts: []svcdomain.ServicePart{
				{PartID: "5", PartName: "Transmission Fluid", Quantity: 4, UnitPrice: 349000, TotalPrice: 1396000},
			},
			TotalCost: 2396000, Status: svcdomain.StatusCompleted,
			Notes:     "Transmission filter also replaced. Fluid was dark but no metal particles found.",
			CreatedAt: ts("2024-12-25T11:30:00Z"), UpdatedAt: ts("2024-12-25T15:20:00Z"),
		},
		{
			ID: "5", VehicleID: "5", Date: "2024-12-24", Odometer: 32250,
			Description: "Comprehensive inspection and tune-up",
			LaborHours:  4.0, LaborRate: 400000,
			Parts: []svcdomain.ServicePart{
				{PartID: "3", PartName: "Air Filter", Quantity: 1, UnitPrice: 199000, TotalPrice: 199000},
				{PartID: "4", PartName: "Spark Plugs Set", Quantity: 1, UnitPrice: 649000, TotalPrice: 649000},
				{PartID: "10", PartName: "Cabin Air Filter", Quantity: 1, UnitPrice: 329000, TotalPrice: 329000},
			},
			TotalCost: 2777000, Status: svcdomain.StatusCompleted,
			Notes:     "All systems checked. Recommended coolant flush at next service. Tires rotated.",
			CreatedAt: ts("2024-12-24T09:15:00Z"), UpdatedAt: ts("2024-12-24T16:30:00Z"),
		},
	}
}
