// Package testkit generates deterministic synthetic employee data for tests
// and for the server's demo mode when no data file is configured.
package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"goattrition/domain/table"
)

// EmployeeGeneratorConfig configures the employee data generator
type EmployeeGeneratorConfig struct {
	EmployeeCount int     `json:"employee_count"`
	AttritionRate float64 `json:"attrition_rate"`
	Seed          int64   `json:"seed"`
}

// DefaultEmployeeConfig returns sensible defaults for employee data generation
func DefaultEmployeeConfig() EmployeeGeneratorConfig {
	return EmployeeGeneratorConfig{
		EmployeeCount: 500,
		AttritionRate: 0.16,
		Seed:          42,
	}
}

// EmployeeDataGenerator generates realistic HR attrition records
type EmployeeDataGenerator struct {
	config EmployeeGeneratorConfig
	rng    *rand.Rand
}

// NewEmployeeDataGenerator creates a new employee data generator
func NewEmployeeDataGenerator(config EmployeeGeneratorConfig) *EmployeeDataGenerator {
	return &EmployeeDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	departments     = []string{"Sales", "Research & Development", "Human Resources"}
	genders         = []string{"Male", "Female"}
	maritalStatuses = []string{"Single", "Married", "Divorced"}
	jobRoles        = []string{
		"Sales Executive", "Research Scientist", "Laboratory Technician",
		"Manufacturing Director", "Healthcare Representative", "Manager",
		"Sales Representative", "Research Director", "Human Resources",
	}
)

// Header is the column order of generated datasets
var Header = []string{
	"EmployeeNumber", "Age", "Attrition", "Department", "Gender", "Education",
	"MaritalStatus", "JobRole", "MonthlyIncome", "YearsAtCompany",
	"YearsSinceLastPromotion", "YearsWithCurrManager",
}

// GenerateDataset builds a complete synthetic attrition dataset
func (g *EmployeeDataGenerator) GenerateDataset() *table.Dataset {
	rows := make([][]string, g.config.EmployeeCount)
	for i := range rows {
		rows[i] = g.generateEmployee(i + 1)
	}
	return table.New("synthetic_employees", Header, rows)
}

// generateEmployee produces one record. Tenure-derived fields stay mutually
// consistent: years since promotion and with the current manager never
// exceed years at company.
func (g *EmployeeDataGenerator) generateEmployee(number int) []string {
	age := 18 + g.rng.Intn(43)
	yearsAtCompany := g.rng.Intn(maxInt(1, age-18) + 1)
	if yearsAtCompany > 40 {
		yearsAtCompany = 40
	}
	yearsSincePromotion := 0
	yearsWithManager := 0
	if yearsAtCompany > 0 {
		yearsSincePromotion = g.rng.Intn(yearsAtCompany + 1)
		yearsWithManager = g.rng.Intn(yearsAtCompany + 1)
	}

	education := 1 + g.rng.Intn(5)
	income := 2000 + education*800 + yearsAtCompany*300 + g.rng.Intn(3000)

	// Younger, newer employees leave more often
	leaveChance := g.config.AttritionRate
	if age < 30 {
		leaveChance *= 1.8
	}
	if yearsAtCompany < 2 {
		leaveChance *= 1.5
	}
	attrition := "No"
	if g.rng.Float64() < math.Min(leaveChance, 0.95) {
		attrition = "Yes"
	}

	return []string{
		fmt.Sprintf("%04d", number),
		strconv.Itoa(age),
		attrition,
		departments[g.rng.Intn(len(departments))],
		genders[g.rng.Intn(len(genders))],
		strconv.Itoa(education),
		maritalStatuses[g.rng.Intn(len(maritalStatuses))],
		jobRoles[g.rng.Intn(len(jobRoles))],
		strconv.Itoa(income),
		strconv.Itoa(yearsAtCompany),
		strconv.Itoa(yearsSincePromotion),
		strconv.Itoa(yearsWithManager),
	}
}

// GenerateEmployees builds a dataset of n records from a seed
func GenerateEmployees(n int, seed int64) *table.Dataset {
	config := DefaultEmployeeConfig()
	config.EmployeeCount = n
	config.Seed = seed
	return NewEmployeeDataGenerator(config).GenerateDataset()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
