package game

// Catalog is a read-only snapshot of the simulated airline. Accessors return
// copies so callers cannot mutate the shared data.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) DashboardStats() []Stat {
	return []Stat{
		{Label: "Daily Revenue", Value: "$124,590"},
		{Label: "Active Aircraft", Value: "12"},
		{Label: "Routes", Value: "18"},
		{Label: "Staff", Value: "847"},
	}
}

func (c *Catalog) FleetPerformance() []Stat {
	return []Stat{
		{Label: "On-time Performance", Value: "94.2%"},
		{Label: "Load Factor", Value: "87%"},
	}
}

func (c *Catalog) Alerts() []Alert {
	return []Alert{
		{Level: AlertInfo, Message: "Flight AE-204 scheduled for departure in 2 hours"},
		{Level: AlertWarning, Message: "Aircraft maintenance required for Boeing 737-800"},
		{Level: AlertSuccess, Message: "New route to Tokyo approved and operational"},
	}
}

func (c *Catalog) RecentActivity() []Activity {
	return []Activity{
		{Text: "Flight AE-101 departed from JFK", Time: "2 min ago"},
		{Text: "New pilot hired: Captain Sarah Johnson", Time: "15 min ago"},
		{Text: "Route LAX-SFO completed successfully", Time: "1 hour ago"},
		{Text: "Aircraft maintenance completed on Airbus A320", Time: "2 hours ago"},
	}
}

func (c *Catalog) Routes() []Route {
	return []Route{
		{Name: "JFK - LHR", Aircraft: "Boeing 777-300ER", Status: RouteActive,
			Passengers: "2,456", Load: "94%", Revenue: "$45,230", Duration: "7h 15m"},
		{Name: "LAX - NRT", Aircraft: "Airbus A350-900", Status: RouteActive,
			Passengers: "1,834", Load: "87%", Revenue: "$38,920", Duration: "11h 30m"},
		{Name: "JFK - LAX", Aircraft: "Boeing 737-800", Status: RouteScheduled,
			Passengers: "1,975", Load: "91%", Revenue: "$31,450", Duration: "5h 45m"},
		{Name: "LHR - SYD", Aircraft: "Airbus A380", Status: RouteMaintenance,
			Passengers: "0", Load: "0%", Revenue: "$0", Duration: "22h 10m"},
	}
}

func (c *Catalog) Fleet() []Aircraft {
	return []Aircraft{
		{Model: "Boeing 777-300ER", Registration: "N777AE", Status: AircraftOperational,
			Route: "JFK-LHR", Utilization: "87%", Efficiency: "94%", Revenue: "$2.1M", NextMaintenance: "45 days"},
		{Model: "Airbus A350-900", Registration: "N350AE", Status: AircraftOperational,
			Route: "LAX-NRT", Utilization: "92%", Efficiency: "96%", Revenue: "$1.8M", NextMaintenance: "12 days"},
		{Model: "Boeing 737-800", Registration: "N738AE", Status: AircraftMaintenance,
			Route: "Ground", Utilization: "0%", Efficiency: "0%", Revenue: "$1.2M", NextMaintenance: "In Progress"},
		{Model: "Airbus A380", Registration: "N380AE", Status: AircraftScheduled,
			Route: "LHR-SYD", Utilization: "78%", Efficiency: "91%", Revenue: "$2.8M", NextMaintenance: "90 days"},
	}
}

// FleetByStatus filters the fleet; an empty status returns everything.
func (c *Catalog) FleetByStatus(status AircraftStatus) []Aircraft {
	fleet := c.Fleet()
	if status == "" {
		return fleet
	}
	filtered := make([]Aircraft, 0, len(fleet))
	for _, a := range fleet {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (c *Catalog) Departments() []Department {
	return []Department{
		{Name: "Flight Operations", Headcount: 124, AvgSalary: "$78K",
			Performance: "excellent", Satisfaction: "94%", Retention: "96%"},
		{Name: "Cabin Crew", Headcount: 186, AvgSalary: "$52K",
			Performance: "good", Satisfaction: "89%", Retention: "92%"},
		{Name: "Ground Operations", Headcount: 298, AvgSalary: "$45K",
			Performance: "good", Satisfaction: "87%", Retention: "88%"},
		{Name: "Administration", Headcount: 89, AvgSalary: "$65K",
			Performance: "excellent", Satisfaction: "91%", Retention: "94%"},
	}
}

func (c *Catalog) StaffActivity() []Activity {
	return []Activity{
		{Text: "New pilot Captain Sarah Johnson hired", Time: "2 hours ago"},
		{Text: "Flight attendant training completed - 12 graduates", Time: "1 day ago"},
		{Text: "Excellence award given to Maintenance Team Alpha", Time: "2 days ago"},
		{Text: "Quarterly performance reviews scheduled", Time: "3 days ago"},
	}
}

func (c *Catalog) Technologies() []Technology {
	return []Technology{
		{Branch: "efficiency", Name: "Advanced Engine Technology", Level: 3, Progress: 67, Cost: "2,400 RP",
			Benefits: []string{"15% fuel efficiency improvement", "Reduced maintenance costs", "Lower emissions"}},
		{Branch: "efficiency", Name: "Lightweight Materials", Level: 2, Progress: 100, Cost: "1,800 RP",
			Benefits: []string{"8% weight reduction", "Increased cargo capacity"}},
		{Branch: "comfort", Name: "Premium Cabin Design", Level: 4, Progress: 42, Cost: "3,200 RP",
			Benefits: []string{"Higher ticket prices", "Improved passenger satisfaction"}},
		{Branch: "operations", Name: "Automated Scheduling", Level: 1, Progress: 15, Cost: "2,000 RP",
			Benefits: []string{"Better aircraft utilization", "Fewer delays"}},
	}
}

func (c *Catalog) Expenses() []Expense {
	return []Expense{
		{Category: "Fuel", Amount: "$384K", Percentage: 35},
		{Category: "Staff Salaries", Amount: "$298K", Percentage: 27},
		{Category: "Aircraft Maintenance", Amount: "$156K", Percentage: 14},
		{Category: "Airport Fees", Amount: "$89K", Percentage: 8},
		{Category: "Insurance", Amount: "$67K", Percentage: 6},
		{Category: "Other", Amount: "$112K", Percentage: 10},
	}
}

func (c *Catalog) RecentTransactions() []Transaction {
	return []Transaction{
		{Description: "Route Revenue - JFK to LHR", Date: "Today, 2:30 PM", Amount: "+$45,230", Kind: TransactionIncome},
		{Description: "Fuel Purchase - LAX Terminal", Date: "Today, 11:45 AM", Amount: "-$18,500", Kind: TransactionExpense},
		{Description: "Route Revenue - LAX to NRT", Date: "Yesterday, 8:20 PM", Amount: "+$38,920", Kind: TransactionIncome},
		{Description: "Aircraft Lease Payment", Date: "Yesterday, 3:00 PM", Amount: "-$125,000", Kind: TransactionExpense},
		{Description: "Staff Payroll", Date: "2 days ago", Amount: "-$89,450", Kind: TransactionExpense},
	}
}

func (c *Catalog) Campaigns() []Campaign {
	return []Campaign{
		{Name: "Premium Routes Launch", Status: "active", Budget: "$15,000", Spent: "$8,450",
			Impressions: "247K", Clicks: "12,340", Conversions: "1,247", ROI: "+234%"},
		{Name: "Summer Travel Deals", Status: "active", Budget: "$25,000", Spent: "$22,100",
			Impressions: "589K", Clicks: "28,750", Conversions: "3,456", ROI: "+187%"},
		{Name: "Business Class Upgrade", Status: "completed", Budget: "$12,000", Spent: "$12,000",
			Impressions: "156K", Clicks: "8,920", Conversions: "892", ROI: "+156%"},
	}
}

func (c *Catalog) MarketingKPIs() []KPI {
	return []KPI{
		{Label: "Total Impressions", Value: "2.4M", Change: "+12%"},
		{Label: "Click Rate", Value: "4.8%", Change: "+0.3%"},
		{Label: "Brand Sentiment", Value: "8.7/10", Change: "+0.4"},
		{Label: "New Customers", Value: "1,247", Change: "+18%"},
	}
}

func (c *Catalog) Products() []Product {
	return []Product{
		{Category: "aircraft", Name: "Boeing 737-800", Price: "$8.5M", Rating: 4.5,
			Description: "Reliable narrow-body aircraft perfect for short to medium-haul routes with excellent fuel efficiency."},
		{Category: "aircraft", Name: "Airbus A350-900", Price: "$32.4M", Rating: 4.8,
			Description: "Long-range wide-body airliner with state-of-the-art cabin comfort."},
		{Category: "upgrades", Name: "Winglet Retrofit", Price: "$450K", Rating: 4.2,
			Description: "Aerodynamic winglets cutting fuel burn on existing narrow-bodies."},
		{Category: "services", Name: "Priority Maintenance Contract", Price: "$120K/yr", Rating: 4.6,
			Description: "Guaranteed 24h turnaround at partner maintenance facilities."},
		{Category: "staff", Name: "Senior Pilot Recruitment", Price: "$35K", Rating: 4.4,
			Description: "Headhunting package for type-rated captains."},
	}
}

func (c *Catalog) Alliances() []Alliance {
	return []Alliance{
		{Name: "Global Wings Alliance", Level: "Premium", Members: 47,
			Benefits: []string{"Code-share revenue +15%", "Maintenance cost sharing",
				"Priority airport slots", "Joint marketing campaigns"},
			Requirements: "Level 10+ / 15+ Aircraft / Safety Rating 95%+"},
		{Name: "Pacific Partners", Level: "Standard", Members: 23,
			Benefits: []string{"Code-share revenue +8%", "Shared lounge network"},
			Requirements: "Level 5+ / 8+ Aircraft"},
	}
}

func (c *Catalog) Achievements() []Achievement {
	return []Achievement{
		{Title: "Safety Excellence Award", Date: "December 2024"},
		{Title: "1 Million Passengers Milestone", Date: "November 2024"},
		{Title: "Best Regional Airline", Date: "September 2024"},
	}
}

func (c *Catalog) CompanyProfile() Profile {
	return Profile{
		Airline:      "SkyLine Airways",
		Founded:      "2019",
		Headquarters: "New York, JFK",
		Level:        12,
		Reputation:   "4.6/5",
		SafetyRating: "97%",
		Passengers:   "1.2M",
		Destinations: 18,
	}
}
