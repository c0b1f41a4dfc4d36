package config

import (
	"github.com/spf13/viper"
)

const (
	Port        = "server.port"
	Environment = "server.environment"
	JWTSecret   = "server.jwt_secret"

	MongoURI = "database.mongo_uri"

	RazorpayKeyID     = "razorpay.key_id"
	RazorpayKeySecret = "razorpay.key_secret"

	EmailUser = "email.user"
	EmailPass = "email.pass"

	AllowedOrigins = "cors.allowed_origins"
)

func init() {
	viper.AutomaticEnv()

	viper.BindEnv(Port, "PORT")
	viper.BindEnv(Environment, "ENVIRONMENT")
	viper.BindEnv(JWTSecret, "JWT_SECRET")
	viper.BindEnv(MongoURI, "MONGO_URI")
	viper.BindEnv(RazorpayKeyID, "RAZORPAY_KEY_ID")
	viper.BindEnv(RazorpayKeySecret, "RAZORPAY_KEY_SECRET")
	viper.BindEnv(EmailUser, "EMAIL_USER")
	viper.BindEnv(EmailPass, "EMAIL_PASS")
	viper.BindEnv(AllowedOrigins, "ALLOWED_ORIGINS")

	viper.SetDefault(Port, "5000")
	viper.SetDefault(Environment, "development")
	viper.SetDefault(MongoURI, "mongodb://localhost:27017/eventify")
	viper.SetDefault(AllowedOrigins, "https://eventify-frontend-eight.vercel.app,http://localhost:5173")
}

// Production reports whether the process runs with production error reporting,
// which suppresses stack traces in response bodies.
func Production() bool {
	return viper.GetString(Environment) == "production"
}
