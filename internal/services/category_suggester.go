package services

import (
	"slices"
	"strings"
	"unicode"

	"money-tracker/internal/models"
)

// minFuzzySimilarity is the lowest similarity accepted for a fuzzy merchant match
const minFuzzySimilarity = 0.75

type categorySuggester struct {
	merchantPatterns []merchantPattern
	keywordPatterns  []keywordPattern
}

type merchantPattern struct {
	name       string
	category   models.TransactionCategory
	confidence float64
}

type keywordPattern struct {
	keywords   []string
	category   models.TransactionCategory
	confidence float64
}

// NewCategorySuggester creates a suggester backed by merchant and keyword patterns
func NewCategorySuggester() CategorySuggesterInterface {
	return &categorySuggester{
		merchantPatterns: initMerchantPatterns(),
		keywordPatterns:  initKeywordPatterns(),
	}
}

// Suggest picks a category for a title, restricted to the categories allowed
// for the transaction type. It falls back to Other with zero confidence.
func (s *categorySuggester) Suggest(title string, transactionType models.TransactionType) models.CategorySuggestion {
	fallback := models.CategorySuggestion{Category: models.CategoryOther}

	normalized := normalizeForMatching(title)
	if normalized == "" || !models.IsValidTransactionType(transactionType) {
		return fallback
	}

	allowed := func(c models.TransactionCategory) bool {
		return models.IsCategoryAllowedForType(transactionType, c)
	}

	for _, pattern := range s.merchantPatterns {
		if allowed(pattern.category) && containsWords(normalized, normalizeForMatching(pattern.name)) {
			return models.CategorySuggestion{Category: pattern.category, Confidence: pattern.confidence, MatchedOn: pattern.name}
		}
	}

	for _, pattern := range s.keywordPatterns {
		if !allowed(pattern.category) {
			continue
		}
		for _, keyword := range pattern.keywords {
			if containsWords(normalized, normalizeForMatching(keyword)) {
				return models.CategorySuggestion{Category: pattern.category, Confidence: pattern.confidence, MatchedOn: keyword}
			}
		}
	}

	if pattern, score := s.fuzzyMatchMerchant(normalized, allowed); score > 0 {
		return models.CategorySuggestion{Category: pattern.category, Confidence: score * pattern.confidence, MatchedOn: pattern.name}
	}

	return fallback
}

// fuzzyMatchMerchant compares every word of the title against the merchant names
func (s *categorySuggester) fuzzyMatchMerchant(normalized string, allowed func(models.TransactionCategory) bool) (merchantPattern, float64) {
	var best merchantPattern
	var bestScore float64

	words := strings.Fields(normalized)
	for _, pattern := range s.merchantPatterns {
		if !allowed(pattern.category) {
			continue
		}
		name := normalizeForMatching(pattern.name)
		for _, word := range words {
			score := calculateSimilarity(word, name)
			if score >= minFuzzySimilarity && score > bestScore {
				best, bestScore = pattern, score
			}
		}
	}

	return best, bestScore
}

func initMerchantPatterns() []merchantPattern {
	return []merchantPattern{
		// Food
		{"Whole Foods", models.CategoryFood, 0.95},
		{"Trader Joes", models.CategoryFood, 0.95},
		{"Safeway", models.CategoryFood, 0.95},
		{"Kroger", models.CategoryFood, 0.95},
		{"Starbucks", models.CategoryFood, 0.95},
		{"Chipotle", models.CategoryFood, 0.95},
		{"McDonalds", models.CategoryFood, 0.95},
		{"Panera", models.CategoryFood, 0.95},

		// Transportation
		{"Uber", models.CategoryTransportation, 0.90},
		{"Lyft", models.CategoryTransportation, 0.95},
		{"Shell", models.CategoryTransportation, 0.90},
		{"Chevron", models.CategoryTransportation, 0.95},
		{"Metro", models.CategoryTransportation, 0.85},

		// Shopping
		{"Amazon", models.CategoryShopping, 0.90},
		{"Target", models.CategoryShopping, 0.90},
		{"IKEA", models.CategoryShopping, 0.95},
		{"Best Buy", models.CategoryShopping, 0.95},

		// Entertainment
		{"Netflix", models.CategoryEntertainment, 0.95},
		{"Spotify", models.CategoryEntertainment, 0.95},
		{"AMC", models.CategoryEntertainment, 0.90},
		{"Steam", models.CategoryEntertainment, 0.85},

		// Bills
		{"Comcast", models.CategoryBills, 0.95},
		{"Verizon", models.CategoryBills, 0.95},
		{"AT&T", models.CategoryBills, 0.95},

		// Healthcare
		{"CVS", models.CategoryHealthcare, 0.90},
		{"Walgreens", models.CategoryHealthcare, 0.90},

		// Education
		{"Coursera", models.CategoryEducation, 0.95},
		{"Udemy", models.CategoryEducation, 0.95},

		// Investment
		{"Vanguard", models.CategoryInvestment, 0.95},
		{"Fidelity", models.CategoryInvestment, 0.95},
	}
}

func initKeywordPatterns() []keywordPattern {
	return []keywordPattern{
		{[]string{"Salary", "Payroll", "Paycheck", "Wage", "Direct Deposit"}, models.CategorySalary, 0.95},
		{[]string{"Invoice", "Freelance", "Consulting", "Contract", "Gig"}, models.CategoryFreelance, 0.85},
		{[]string{"Dividend", "Interest", "Capital Gain", "Brokerage"}, models.CategoryInvestment, 0.85},
		{[]string{"Rent", "Electric", "Water", "Internet", "Phone", "Insurance", "Utility"}, models.CategoryBills, 0.85},
		{[]string{"Grocery", "Groceries", "Restaurant", "Coffee", "Lunch", "Dinner", "Breakfast"}, models.CategoryFood, 0.80},
		{[]string{"Fuel", "Gas", "Parking", "Taxi", "Train", "Bus"}, models.CategoryTransportation, 0.80},
		{[]string{"Pharmacy", "Doctor", "Dentist", "Hospital", "Clinic"}, models.CategoryHealthcare, 0.85},
		{[]string{"Tuition", "Course", "Books", "School"}, models.CategoryEducation, 0.80},
		{[]string{"Movie", "Concert", "Cinema", "Game", "Tickets"}, models.CategoryEntertainment, 0.75},
		{[]string{"Refund", "Gift", "Reimbursement"}, models.CategoryOther, 0.60},
	}
}

// normalizeForMatching lowercases, drops apostrophes and turns other
// punctuation into word breaks
func normalizeForMatching(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '’':
			return -1
		case r == '&' || unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// containsWords reports whether phrase occurs in text on word boundaries
func containsWords(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	return 1.0 - float64(levenshteinDistance(r1, r2))/float64(max(len(r1), len(r2)))
}

// levenshteinDistance keeps a single row of the edit matrix
func levenshteinDistance(s1, s2 []rune) int {
	row := make([]int, len(s2)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			current := row[j]
			row[j] = slices.Min([]int{row[j] + 1, row[j-1] + 1, prev + cost})
			prev = current
		}
	}

	return row[len(s2)]
}
