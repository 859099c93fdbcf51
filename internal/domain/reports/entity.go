package reports

import (
	"slices"
	"time"
)

// ReportID tipe untuk ScamReport
type ReportID string

// Category enum
type Category string

const (
	CategoryDebtCollection      Category = "debt-collection"
	CategoryUtilities           Category = "utilities"
	CategoryMoneyScams          Category = "money-scams"
	CategoryTechSupport         Category = "tech-support"
	CategoryFakePrizes          Category = "fake-prizes"
	CategoryIRSTax              Category = "irs-tax"
	CategoryCharity             Category = "charity"
	CategoryInsurance           Category = "insurance"
	CategoryCreditCard          Category = "credit-card"
	CategoryLoanOffers          Category = "loan-offers"
	CategoryInvestment          Category = "investment"
	CategoryRomance             Category = "romance"
	CategoryPhishing            Category = "phishing"
	CategoryRobocalls           Category = "robocalls"
	CategoryPolitical           Category = "political"
	CategorySurvey              Category = "survey"
	CategoryVacation            Category = "vacation"
	CategoryHealthMedical       Category = "health-medical"
	CategoryEmployment          Category = "employment"
	CategoryBusinessOpportunity Category = "business-opportunity"
)

// Categories lists every accepted category in display order.
var Categories = []Category{
	CategoryDebtCollection, CategoryUtilities, CategoryMoneyScams, CategoryTechSupport,
	CategoryFakePrizes, CategoryIRSTax, CategoryCharity, CategoryInsurance,
	CategoryCreditCard, CategoryLoanOffers, CategoryInvestment, CategoryRomance,
	CategoryPhishing, CategoryRobocalls, CategoryPolitical, CategorySurvey,
	CategoryVacation, CategoryHealthMedical, CategoryEmployment, CategoryBusinessOpportunity,
}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// CallType enum
type CallType string

const (
	CallTypeLive      CallType = "live"
	CallTypeRobocall  CallType = "robocall"
	CallTypeVoicemail CallType = "voicemail"
	CallTypeText      CallType = "text"
)

// Frequency enum
type Frequency string

const (
	FrequencyOnce          Frequency = "once"
	FrequencyFewTimes      Frequency = "few-times"
	FrequencyDaily         Frequency = "daily"
	FrequencyMultipleDaily Frequency = "multiple-daily"
)

// ScamReport is the aggregate root, one per canonical phone number.
type ScamReport struct {
	ID          ReportID   `json:"id"`
	PhoneNumber string     `json:"phoneNumber"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	CallType    *CallType  `json:"callType"`
	Frequency   *Frequency `json:"frequency"`
	IsVerified  bool       `json:"isVerified"`
	ReportCount int        `json:"reportCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewReport holds the caller supplied fields of a report.
// PhoneNumber must already be canonical.
type NewReport struct {
	PhoneNumber string
	Category    Category
	Description string
	CallType    *CallType
	Frequency   *Frequency
}

// Filter narrows Search results. Empty fields match everything.
type Filter struct {
	Search   string
	Category Category
}

// Stats value object
type Stats struct {
	TotalScams    int `json:"totalScams"`
	TodayReports  int `json:"todayReports"`
	CommunitySize int `json:"communitySize"`
}
