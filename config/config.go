package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting the sync flows need.
// Table and sheet names default to the production Grist document layout.
type Config struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	DocID   string `validate:"required"`

	RateLimitPerMin int `validate:"gt=0"`

	ExcelDir string

	MasterTable          string `validate:"required"`
	RateLogTable         string `validate:"required"`
	HourClockTable       string `validate:"required"`
	AdvancesTable        string `validate:"required"`
	OvertimeTable        string `validate:"required"`
	PFESICTable          string `validate:"required"`
	NewPFESICTable       string `validate:"required"`
	SalaryStatementTable string `validate:"required"`

	MasterSheet          string
	HourClockSheet       string
	AdvancesSheet        string
	OvertimeSheet        string
	PFESICSheet          string
	NewPFESICSheet       string
	SalaryStatementSheet string
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// Load reads the environment into a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL: stringFromEnv("GRIST_BASE_URL", "https://docs.getgrist.com"),
		APIKey:  os.Getenv("GRIST_API_KEY"),
		DocID:   os.Getenv("GRIST_DOC_ID"),

		RateLimitPerMin: intFromEnv("GRIST_RATE_LIMIT_PER_MIN", 120),

		ExcelDir: stringFromEnv("EXCEL_FILES_DIR", "."),

		MasterTable:          stringFromEnv("GRIST_TABLE_NAME", "Emp_Master"),
		RateLogTable:         stringFromEnv("GRIST_RATE_LOG_TABLE_NAME", "Emp_RateLog"),
		HourClockTable:       stringFromEnv("GRIST_HOURCLOCK_TABLE_NAME", "HC_Detail"),
		AdvancesTable:        stringFromEnv("GRIST_ADVANCES_TABLE_NAME", "Emp_Advances"),
		OvertimeTable:        stringFromEnv("GRIST_DUMP_OT_TABLE_NAME", "Emp_Dump_OT"),
		PFESICTable:          stringFromEnv("GRIST_DUMP_PFESIC_TABLE_NAME", "Emp_Dump_PFESIC"),
		NewPFESICTable:       stringFromEnv("GRIST_DUMP_NW_PFESIC_TABLE_NAME", "Emp_Dump_NW_PFESIC"),
		SalaryStatementTable: stringFromEnv("GRIST_DUMP_SS_TABLE_NAME", "Emp_Dump_SS"),

		MasterSheet:          stringFromEnv("MASTER_SHEET_NAME", "MasterSalarySheet"),
		HourClockSheet:       stringFromEnv("HOURCLOCK_SHEET_NAME", "HourClock"),
		AdvancesSheet:        stringFromEnv("ADVANCES_SHEET_NAME", "Advances"),
		OvertimeSheet:        stringFromEnv("OT_SHEET_NAME", "OT"),
		PFESICSheet:          stringFromEnv("PFESIC_SHEET_NAME", "PF-ESIC Sheet"),
		NewPFESICSheet:       stringFromEnv("NEW_PFESIC_SHEET_NAME", "NEW PF ESIC"),
		SalaryStatementSheet: stringFromEnv("SALARY_STATEMENT_SHEET_NAME", "SalaryStatement"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func stringFromEnv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
