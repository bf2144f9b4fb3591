package catalog

import "energy-package-roi/internal/model"

// Default returns the built-in package range. Prices are whole dollars.
func Default() *Catalog {
	return &Catalog{
		EVs: []model.EVSpec{
			{
				Name:                "Essential",
				Model:               "BYD Atto 3",
				BatteryCapacityKWh:  60,
				RangeKm:             400,
				ChargingPowerKW:     7,
				V2GCapable:          true,
				Price:               65000,
				ProfitShare:         0.15,
				ConsumptionKWhPerKm: 0.16,
				Features:            []string{"Vehicle-to-grid ready", "Smart charging", "7kW AC charging"},
			},
			{
				Name:                "Performance",
				Model:               "Tesla Model 3",
				BatteryCapacityKWh:  75,
				RangeKm:             510,
				ChargingPowerKW:     11,
				V2GCapable:          true,
				Price:               85000,
				ProfitShare:         0.12,
				ConsumptionKWhPerKm: 0.14,
				Features:            []string{"Premium interior", "11kW AC charging", "Advanced autopilot"},
			},
			{
				Name:                "Premium",
				Model:               "Tesla Model Y",
				BatteryCapacityKWh:  82,
				RangeKm:             530,
				ChargingPowerKW:     11,
				V2GCapable:          true,
				Price:               95000,
				ProfitShare:         0.12,
				ConsumptionKWhPerKm: 0.16,
				Features:            []string{"SUV format", "Premium interior", "11kW AC charging"},
			},
		},
		Batteries: []model.BatterySpec{
			{
				Name:          "Starter",
				CapacityKWh:   10,
				PeakPowerKW:   5,
				Cycles:        6000,
				WarrantyYears: 10,
				Price:         15000,
				ProfitShare:   0.20,
				GridShare:     0.30,
				Features:      []string{"Basic backup power", "Solar integration", "Smart monitoring"},
			},
			{
				Name:          "Essential",
				CapacityKWh:   15,
				PeakPowerKW:   7.5,
				Cycles:        6000,
				WarrantyYears: 10,
				Price:         20000,
				ProfitShare:   0.18,
				GridShare:     0.30,
				Features:      []string{"Extended backup power", "Solar integration", "Smart monitoring"},
			},
			{
				Name:          "Performance",
				CapacityKWh:   20,
				PeakPowerKW:   10,
				Cycles:        8000,
				WarrantyYears: 12,
				Price:         25000,
				ProfitShare:   0.15,
				GridShare:     0.30,
				Features:      []string{"Whole home backup", "Advanced monitoring", "FCAS participation"},
			},
		},
		Solar: []model.SolarSpec{
			{
				Name:           "Starter",
				CapacityKW:     6.6,
				PanelCount:     12,
				PanelPowerW:    550,
				InverterSizeKW: 5,
				Price:          10000,
				WarrantyYears:  10,
				Features:       []string{"Basic monitoring", "Single phase"},
			},
			{
				Name:           "Essential",
				CapacityKW:     8.8,
				PanelCount:     16,
				PanelPowerW:    550,
				InverterSizeKW: 8,
				Price:          13000,
				WarrantyYears:  12,
				Features:       []string{"Advanced monitoring", "Single phase", "Panel optimization"},
			},
			{
				Name:           "Performance",
				CapacityKW:     13.2,
				PanelCount:     24,
				PanelPowerW:    550,
				InverterSizeKW: 10,
				Price:          18000,
				WarrantyYears:  12,
				Features:       []string{"Premium panels", "Three phase", "Panel optimization"},
			},
		},
	}
}
