package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySimSteps          string = "SIM_STEPS"
	EnvKeySimStepRate       string = "SIM_STEP_RATE"
	EnvKeySimRetentionHours string = "SIM_RETENTION_HOURS"
	EnvKeySimArchive        string = "SIM_ARCHIVE"

	LoggerNamePlant      string = "plant"
	LoggerNameMonitoring string = "monitoring"
	LoggerNameSimulator  string = "simulator"
	LoggerNameArchive    string = "archive"

	LoggerFieldCategory string = "category"

	LoggerCategoryTurbine   string = "turbine"
	LoggerCategoryGenerator string = "generator"
	LoggerCategoryReservoir string = "reservoir"
	LoggerCategoryWaterFlow string = "water_flow"
	LoggerCategoryReading   string = "reading"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryRetention string = "retention"
	LoggerCategoryReport    string = "report"
	LoggerCategoryStep      string = "step"
	LoggerCategoryControl   string = "control"
)
