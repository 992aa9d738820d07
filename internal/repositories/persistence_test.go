package repositories

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"money-tracker/internal/database"
	"money-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	bolt "go.etcd.io/bbolt"
)

// PersistenceContractSuite runs the same checks against every backend
type PersistenceContractSuite struct {
	suite.Suite
	newRepo func(t *testing.T) TransactionPersistenceInterface
	repo    TransactionPersistenceInterface
}

func (s *PersistenceContractSuite) SetupTest() {
	s.repo = s.newRepo(s.T())
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &PersistenceContractSuite{
		newRepo: func(t *testing.T) TransactionPersistenceInterface {
			return NewMemoryRepository()
		},
	})
}

func TestJSONFileRepository(t *testing.T) {
	suite.Run(t, &PersistenceContractSuite{
		newRepo: func(t *testing.T) TransactionPersistenceInterface {
			return NewJSONFileRepository(filepath.Join(t.TempDir(), "nested", "transactions.json"))
		},
	})
}

func TestBoltRepository(t *testing.T) {
	suite.Run(t, &PersistenceContractSuite{
		newRepo: func(t *testing.T) TransactionPersistenceInterface {
			repo, err := OpenBoltRepository(filepath.Join(t.TempDir(), "transactions.db"))
			require.NoError(t, err)
			t.Cleanup(func() {
				repo.(*boltRepository).Close()
			})
			return repo
		},
	})
}

func TestSQLRepository(t *testing.T) {
	suite.Run(t, &PersistenceContractSuite{
		newRepo: func(t *testing.T) TransactionPersistenceInterface {
			db := database.SetupTestDB(t)
			return NewSQLRepository(db.DB)
		},
	})
}

func fakeTransaction(faker *gofakeit.Faker, date time.Time) models.Transaction {
	transactionType := models.TransactionTypeExpense
	categories := models.ExpenseCategories()
	if faker.Bool() {
		transactionType = models.TransactionTypeIncome
		categories = models.IncomeCategories()
	}

	return models.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.NewFromFloat(faker.Float64Range(1, 5000)).Round(2),
		Title:    faker.ProductName(),
		Category: categories[faker.Number(0, len(categories)-1)],
		Date:     date,
		Type:     transactionType,
		Notes:    faker.Sentence(4),
	}
}

func assertSameTransactions(t *testing.T, expected, actual []models.Transaction) {
	t.Helper()

	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].ID, actual[i].ID, "id at %d", i)
		assert.True(t, expected[i].Amount.Equal(actual[i].Amount), "amount at %d: %s != %s", i, expected[i].Amount, actual[i].Amount)
		assert.Equal(t, expected[i].Title, actual[i].Title)
		assert.Equal(t, expected[i].Category, actual[i].Category)
		assert.True(t, expected[i].Date.Equal(actual[i].Date), "date at %d: %s != %s", i, expected[i].Date, actual[i].Date)
		assert.Equal(t, expected[i].Type, actual[i].Type)
		assert.Equal(t, expected[i].Notes, actual[i].Notes)
	}
}

func (s *PersistenceContractSuite) TestLoad_NothingStored() {
	transactions, err := s.repo.Load()

	require.NoError(s.T(), err)
	assert.Nil(s.T(), transactions)
}

func (s *PersistenceContractSuite) TestSaveAndLoad_PreservesOrder() {
	faker := gofakeit.New(42)
	base := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	var saved []models.Transaction
	for i := 0; i < 25; i++ {
		// Dates deliberately out of order
		saved = append(saved, fakeTransaction(faker, base.Add(time.Duration((i*7)%11)*time.Hour)))
	}

	require.NoError(s.T(), s.repo.Save(saved))

	loaded, err := s.repo.Load()
	require.NoError(s.T(), err)
	assertSameTransactions(s.T(), saved, loaded)
}

func (s *PersistenceContractSuite) TestSave_ReplacesPreviousCollection() {
	faker := gofakeit.New(7)
	now := time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC)

	first := []models.Transaction{fakeTransaction(faker, now), fakeTransaction(faker, now)}
	second := []models.Transaction{fakeTransaction(faker, now.Add(time.Hour))}

	require.NoError(s.T(), s.repo.Save(first))
	require.NoError(s.T(), s.repo.Save(second))

	loaded, err := s.repo.Load()
	require.NoError(s.T(), err)
	assertSameTransactions(s.T(), second, loaded)
}

func (s *PersistenceContractSuite) TestSave_EmptyCollection() {
	faker := gofakeit.New(3)
	require.NoError(s.T(), s.repo.Save([]models.Transaction{fakeTransaction(faker, time.Now().UTC())}))
	require.NoError(s.T(), s.repo.Save(nil))

	loaded, err := s.repo.Load()
	require.NoError(s.T(), err)
	assert.Empty(s.T(), loaded)
}

func (s *PersistenceContractSuite) TestSave_DuplicateIDs() {
	faker := gofakeit.New(11)
	date := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

	original := fakeTransaction(faker, date)
	duplicate := original
	duplicate.Title = "Second copy"

	saved := []models.Transaction{original, duplicate}
	require.NoError(s.T(), s.repo.Save(saved))

	loaded, err := s.repo.Load()
	require.NoError(s.T(), err)
	assertSameTransactions(s.T(), saved, loaded)
}

func TestJSONFileRepository_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "not-json"`), 0o600))

	repo := NewJSONFileRepository(path)
	transactions, err := repo.Load()

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Nil(t, transactions)
}

func TestJSONFileRepository_UnknownCategoryFailsWholeBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	blob := `[
		{"id":"6f1c2c56-2a5e-4a53-9d0e-0d3f1e1a0b11","amount":10,"title":"Lunch","category":"Food","date":"2024-03-01T12:00:00Z","type":"Expense","notes":""},
		{"id":"6f1c2c56-2a5e-4a53-9d0e-0d3f1e1a0b12","amount":20,"title":"Pets","category":"Pets","date":"2024-03-01T12:00:00Z","type":"Expense","notes":""}
	]`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	transactions, err := NewJSONFileRepository(path).Load()

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Nil(t, transactions)
}

func TestJSONFileRepository_WritesJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	repo := NewJSONFileRepository(path)

	require.NoError(t, repo.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	matches, err := filepath.Glob(path + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBoltRepository_MalformedValue(t *testing.T) {
	db, err := bolt.Open(filepath.Join(t.TempDir(), "transactions.db"), 0o600, nil)
	require.NoError(t, err)
	defer db.Close()

	repo, err := NewBoltRepository(db)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(settingsBucketName).Put(transactionsKey, []byte("{broken"))
	})
	require.NoError(t, err)

	transactions, err := repo.Load()
	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Nil(t, transactions)
}

func TestBoltRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.db")
	faker := gofakeit.New(5)
	saved := []models.Transaction{fakeTransaction(faker, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))}

	repo, err := OpenBoltRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(saved))
	require.NoError(t, repo.(*boltRepository).Close())

	reopened, err := OpenBoltRepository(path)
	require.NoError(t, err)
	defer reopened.(*boltRepository).Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	assertSameTransactions(t, saved, loaded)
}

func TestSQLRepository_InvalidRowFailsLoad(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := NewSQLRepository(db.DB)

	record := models.TransactionRecord{
		Position:      1,
		TransactionID: uuid.NewString(),
		Amount:        decimal.NewFromInt(5),
		Title:         "Mystery",
		Category:      "Pets",
		Date:          time.Now().UTC(),
		Type:          string(models.TransactionTypeExpense),
	}
	require.NoError(t, db.Create(&record).Error)

	transactions, err := repo.Load()
	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Nil(t, transactions)
}

func TestSQLRepository_PositionsAreContiguous(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := NewSQLRepository(db.DB)
	faker := gofakeit.New(9)
	now := time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save([]models.Transaction{
		fakeTransaction(faker, now),
		fakeTransaction(faker, now),
		fakeTransaction(faker, now),
	}))

	var positions []int
	require.NoError(t, db.Model(&models.TransactionRecord{}).Order("position").Pluck("position", &positions).Error)
	assert.Equal(t, []int{1, 2, 3}, positions)
}
