// Package game holds the sample world of the Airline Empire simulation: the
// data behind every view of the client. The numbers are static by design —
// there is no economic engine or scheduler behind them.
package game

// Stat is a single headline figure on the dashboard.
type Stat struct {
	Label string
	Value string
}

// AlertLevel classifies a dashboard alert.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertSuccess AlertLevel = "success"
)

type Alert struct {
	Level   AlertLevel
	Message string
}

// Activity is one line of the recent-activity feed.
type Activity struct {
	Text string
	Time string
}

// RouteStatus classifies a route in the network.
type RouteStatus string

const (
	RouteActive      RouteStatus = "active"
	RouteScheduled   RouteStatus = "scheduled"
	RouteMaintenance RouteStatus = "maintenance"
)

type Route struct {
	Name       string
	Aircraft   string
	Status     RouteStatus
	Passengers string
	Load       string
	Revenue    string
	Duration   string
}

// AircraftStatus classifies an airframe in the fleet.
type AircraftStatus string

const (
	AircraftOperational AircraftStatus = "operational"
	AircraftMaintenance AircraftStatus = "maintenance"
	AircraftScheduled   AircraftStatus = "scheduled"
)

type Aircraft struct {
	Model           string
	Registration    string
	Status          AircraftStatus
	Route           string
	Utilization     string
	Efficiency      string
	Revenue         string
	NextMaintenance string
}

type Department struct {
	Name         string
	Headcount    int
	AvgSalary    string
	Performance  string
	Satisfaction string
	Retention    string
}

type Technology struct {
	Branch   string
	Name     string
	Level    int
	Progress int
	Cost     string
	Benefits []string
}

type Expense struct {
	Category   string
	Amount     string
	Percentage int
}

// TransactionKind tells income from expense in the finances feed.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

type Transaction struct {
	Description string
	Date        string
	Amount      string
	Kind        TransactionKind
}

type Campaign struct {
	Name        string
	Status      string
	Budget      string
	Spent       string
	Impressions string
	Clicks      string
	Conversions string
	ROI         string
}

// KPI is a marketing key performance indicator with its month-over-month change.
type KPI struct {
	Label  string
	Value  string
	Change string
}

type Product struct {
	Category    string
	Name        string
	Description string
	Price       string
	Rating      float64
}

type Alliance struct {
	Name         string
	Level        string
	Members      int
	Benefits     []string
	Requirements string
}

type Achievement struct {
	Title string
	Date  string
}

// Profile is the company card shown on the profile view.
type Profile struct {
	Airline      string
	Founded      string
	Headquarters string
	Level        int
	Reputation   string
	SafetyRating string
	Passengers   string
	Destinations int
}
