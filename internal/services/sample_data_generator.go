package services

import (
	"slices"
	"time"

	"money-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDay        = 1
	rentDay          = 3
	salaryHour       = 9
	billPaymentHour  = 14
	minDailyPurchase = 8
	maxDailyPurchase = 16
	freelanceChance  = 0.35
	dividendChance   = 0.25
)

// merchant is a title template for one expense category
type merchant struct {
	name     string
	category models.TransactionCategory
}

type sampleDataGenerator struct {
	faker     *gofakeit.Faker
	merchants []merchant
}

// NewSampleDataGenerator creates a generator; a zero seed picks a random one
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker:     gofakeit.New(seed),
		merchants: initializeMerchantPool(),
	}
}

func initializeMerchantPool() []merchant {
	return []merchant{
		{"Whole Foods Market", models.CategoryFood},
		{"Trader Joe's", models.CategoryFood},
		{"Starbucks", models.CategoryFood},
		{"Chipotle Mexican Grill", models.CategoryFood},
		{"Panera Bread", models.CategoryFood},

		{"Uber", models.CategoryTransportation},
		{"Lyft", models.CategoryTransportation},
		{"Shell", models.CategoryTransportation},
		{"Metro Transit", models.CategoryTransportation},

		{"Amazon.com", models.CategoryShopping},
		{"Target", models.CategoryShopping},
		{"IKEA", models.CategoryShopping},
		{"Best Buy", models.CategoryShopping},

		{"Netflix", models.CategoryEntertainment},
		{"Spotify", models.CategoryEntertainment},
		{"AMC Theaters", models.CategoryEntertainment},

		{"CVS Pharmacy", models.CategoryHealthcare},
		{"Walgreens", models.CategoryHealthcare},

		{"Udemy", models.CategoryEducation},
		{"Coursera", models.CategoryEducation},
	}
}

func amountRange(category models.TransactionCategory) (float64, float64) {
	ranges := map[models.TransactionCategory][2]float64{
		models.CategoryFood:           {6.00, 120.00},
		models.CategoryTransportation: {8.00, 70.00},
		models.CategoryShopping:       {15.00, 350.00},
		models.CategoryEntertainment:  {8.00, 60.00},
		models.CategoryBills:          {40.00, 220.00},
		models.CategoryHealthcare:     {15.00, 250.00},
		models.CategoryEducation:      {20.00, 200.00},
		models.CategorySalary:         {2500.00, 4500.00},
		models.CategoryFreelance:      {200.00, 1500.00},
		models.CategoryInvestment:     {25.00, 400.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateMonths generates the months ending at referenceDate's month, oldest first.
// Nothing is dated after referenceDate.
func (g *sampleDataGenerator) GenerateMonths(referenceDate time.Time, months int) []models.Transaction {
	if months <= 0 {
		return []models.Transaction{}
	}

	first := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, referenceDate.Location())

	var transactions []models.Transaction
	for i := months - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		transactions = append(transactions, g.GenerateIncome(month)...)
		transactions = append(transactions, g.GenerateExpenses(month)...)
	}

	transactions = slices.DeleteFunc(transactions, func(t models.Transaction) bool {
		return t.Date.After(referenceDate)
	})
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return transactions
}

// GenerateIncome generates a salary and occasional freelance or investment income
func (g *sampleDataGenerator) GenerateIncome(month time.Time) []models.Transaction {
	transactions := []models.Transaction{
		g.newTransaction(
			models.TransactionTypeIncome,
			models.CategorySalary,
			"Salary - "+g.faker.Company(),
			dayOf(month, salaryDay, salaryHour, 0),
			"Monthly payroll",
		),
	}

	if g.faker.Float64() < freelanceChance {
		transactions = append(transactions, g.newTransaction(
			models.TransactionTypeIncome,
			models.CategoryFreelance,
			"Invoice paid - "+g.faker.Company(),
			g.randomTime(month),
			g.faker.BS(),
		))
	}

	if g.faker.Float64() < dividendChance {
		transactions = append(transactions, g.newTransaction(
			models.TransactionTypeIncome,
			models.CategoryInvestment,
			"Dividend",
			g.randomTime(month),
			"",
		))
	}

	return transactions
}

// GenerateExpenses generates rent, utility bills and daily purchases
func (g *sampleDataGenerator) GenerateExpenses(month time.Time) []models.Transaction {
	transactions := []models.Transaction{
		{
			ID:       g.newID(),
			Amount:   decimal.NewFromInt(int64(g.faker.Number(8, 15)) * 100),
			Title:    "Rent",
			Category: models.CategoryBills,
			Date:     dayOf(month, rentDay, billPaymentHour, 0),
			Type:     models.TransactionTypeExpense,
		},
	}

	for _, bill := range []string{"Electric Company", "Internet Provider", "Phone Bill"} {
		transactions = append(transactions, g.newTransaction(
			models.TransactionTypeExpense,
			models.CategoryBills,
			bill,
			dayOf(month, g.faker.Number(5, 28), billPaymentHour, 0),
			"",
		))
	}

	purchases := g.faker.Number(minDailyPurchase, maxDailyPurchase)
	for i := 0; i < purchases; i++ {
		m := g.merchants[g.faker.Number(0, len(g.merchants)-1)]

		notes := ""
		if m.category == models.CategoryShopping {
			notes = g.faker.ProductName()
		}

		transactions = append(transactions, g.newTransaction(
			models.TransactionTypeExpense,
			m.category,
			m.name,
			g.randomTime(month),
			notes,
		))
	}

	if g.faker.Bool() {
		transactions = append(transactions, g.newTransaction(
			models.TransactionTypeExpense,
			models.CategoryOther,
			"Gift for "+g.faker.FirstName(),
			g.randomTime(month),
			"",
		))
	}

	return transactions
}

func (g *sampleDataGenerator) newTransaction(
	transactionType models.TransactionType,
	category models.TransactionCategory,
	title string,
	date time.Time,
	notes string,
) models.Transaction {
	minValue, maxValue := amountRange(category)
	amount := decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)

	return models.Transaction{
		ID:       g.newID(),
		Amount:   amount,
		Title:    title,
		Category: category,
		Date:     date,
		Type:     transactionType,
		Notes:    notes,
	}
}

func (g *sampleDataGenerator) newID() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

// randomTime picks a day of the month between 08:00 and 21:59
func (g *sampleDataGenerator) randomTime(month time.Time) time.Time {
	day := g.faker.Number(1, daysIn(month))
	return time.Date(month.Year(), month.Month(), day, g.faker.Number(8, 21), g.faker.Number(0, 59), 0, 0, month.Location())
}

func dayOf(month time.Time, day, hour, minute int) time.Time {
	if last := daysIn(month); day > last {
		day = last
	}
	return time.Date(month.Year(), month.Month(), day, hour, minute, 0, 0, month.Location())
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}
