package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	JiraHost       string
	JiraEmail      string
	JiraToken      string
	JiraProjectKey string

	SlackBotToken      string
	SlackSigningSecret string

	AWSRegion   string
	AWSS3Bucket string

	// ReportLocation is the single reporting timezone used for every
	// calendar-date and hour-of-day derivation (attendance dates,
	// worklog dates, window widening). Loaded once at startup; a bad
	// identifier is a deployment error and aborts the process.
	ReportLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminEmail = GetEnv("ADMIN_EMAIL", "admin@moonsys.co")
	AdminPassword = GetEnv("ADMIN_PASSWORD")

	JiraHost = GetEnv("JIRA_HOST")
	JiraEmail = GetEnv("JIRA_EMAIL")
	JiraToken = GetEnv("JIRA_API_TOKEN")
	JiraProjectKey = GetEnv("PROJECT_KEY")

	SlackBotToken = GetEnv("SLACK_BOT_TOKEN")
	SlackSigningSecret = GetEnv("SLACK_SIGNING_SECRET")

	AWSRegion = GetEnv("AWS_REGION", "us-east-1")
	AWSS3Bucket = GetEnv("AWS_S3_BUCKET", "moonsys-projects")

	tz := GetEnv("REPORT_TIME_ZONE", "Asia/Karachi")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("❌ Invalid REPORT_TIME_ZONE %q: %v", tz, err)
	}
	ReportLocation = loc
	log.Printf("✅ Reporting timezone: %s", tz)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if AdminPassword == "" {
		log.Println("⚠️ ADMIN_PASSWORD is not set, login is disabled")
	}
	if JiraHost == "" || JiraToken == "" {
		log.Println("⚠️ Jira credentials incomplete, worklog reports unavailable")
	}
	if SlackSigningSecret == "" {
		log.Println("⚠️ SLACK_SIGNING_SECRET is not set, event callbacks will be rejected")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
