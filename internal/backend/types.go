// Package backend is the typed client for the DealBell delivery
// backend's REST API. All event matching, delivery, retry, and
// aggregation happens behind that API; this package only shapes
// requests and responses for the console and maps failures to
// user-facing messages.
package backend

import "time"

// Webhook is one Pipedrive-to-Chat forwarding endpoint.
type Webhook struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Event        string     `json:"event"`
	TargetSpace  string     `json:"targetSpace"`
	Status       string     `json:"status"` // "active", "paused", "failing"
	SuccessRate  float64    `json:"successRate"` // 0-1 fraction
	Deliveries   int64      `json:"deliveries"`
	LastDelivery *time.Time `json:"lastDelivery,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// WebhookInput carries the mutable webhook fields for create/update.
type WebhookInput struct {
	Name        string `json:"name"`
	Event       string `json:"event"`
	TargetSpace string `json:"targetSpace"`
	Status      string `json:"status,omitempty"`
}

// RuleCondition is one row of a rule's structured filter: a Pipedrive
// field, a comparison operator, and a value. The field and operator
// vocabularies come from the backend's filter schema.
type RuleCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"` // "eq", "neq", "contains", "gt", "lt", "changed"
	Value    string `json:"value"`
}

// Rule configures which events produce a notification and how the
// message is rendered.
type Rule struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Event      string          `json:"event"`
	Conditions []RuleCondition `json:"conditions"`
	Template   string          `json:"template"`
	Channel    string          `json:"channel"`
	Enabled    bool            `json:"enabled"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// RuleInput carries the mutable rule fields for create/update.
type RuleInput struct {
	Name       string          `json:"name"`
	Event      string          `json:"event"`
	Conditions []RuleCondition `json:"conditions"`
	Template   string          `json:"template"`
	Channel    string          `json:"channel"`
	Enabled    bool            `json:"enabled"`
}

// Delivery is one entry of the delivery log.
type Delivery struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Event    string    `json:"event"`
	RuleName string    `json:"ruleName"`
	Channel  string    `json:"channel"`
	Status   string    `json:"status"` // "delivered", "failed", "skipped"
	Attempts int       `json:"attempts"`
	Error    string    `json:"error,omitempty"`
}

// Summary is the dashboard headline block.
type Summary struct {
	TotalSent   int64
	Failed      int64
	SuccessRate float64 // 0-1 fraction
	ActiveRules int
}

// SeriesPoint is one sample of a delivery timeseries.
type SeriesPoint struct {
	Date      string
	Delivered int64
	Failed    int64
}

// Breakdown is one category slice (per event type or per channel).
type Breakdown struct {
	Label string
	Count int64
}

// Plan describes the tenant's subscription.
type Plan struct {
	Name          string `json:"name"`
	MonthlyQuota  int64  `json:"monthlyQuota"`
	PricePerMonth string `json:"pricePerMonth"`
}

// Usage is the current billing period's consumption.
type Usage struct {
	PeriodStart   time.Time `json:"periodStart"`
	PeriodEnd     time.Time `json:"periodEnd"`
	Notifications int64     `json:"notifications"`
	Quota         int64     `json:"quota"`
}

// Invoice is one past invoice.
type Invoice struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount string    `json:"amount"`
	Status string    `json:"status"` // "paid", "open", "void"
	PDFURL string    `json:"pdfUrl,omitempty"`
}

// Onboarding step keys, in wizard order.
const (
	StepConnectPipedrive = "connect_pipedrive"
	StepChooseSpace      = "choose_space"
	StepFirstRule        = "first_rule"
	StepTestNotification = "test_notification"
)

// OnboardingStatus reports wizard progress for the tenant.
type OnboardingStatus struct {
	Completed   []string `json:"completed"`
	CurrentStep string   `json:"currentStep"`
	Done        bool     `json:"done"`
	ConnectURL  string   `json:"connectUrl,omitempty"` // OAuth URL for the connect step
}

// ChatSpace is a Google Chat space available as a notification target.
type ChatSpace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuietHours suppresses notifications inside a daily window.
type QuietHours struct {
	Enabled     bool   `json:"enabled"`
	Start       string `json:"start"` // "22:00"
	End         string `json:"end"`   // "07:00"
	Timezone    string `json:"timezone"`
	MuteWeekend bool   `json:"muteWeekend"`
}

// Settings is the tenant-level configuration block.
type Settings struct {
	QuietHours     QuietHours `json:"quietHours"`
	DefaultChannel string     `json:"defaultChannel"`
	DailyDigest    bool       `json:"dailyDigest"`
	FailureAlerts  bool       `json:"failureAlerts"`
}
