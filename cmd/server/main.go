// cmd/server/main.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/xmdragon/linode-manager/internal/api"
	"github.com/xmdragon/linode-manager/internal/auth"
	"github.com/xmdragon/linode-manager/internal/config"
	"github.com/xmdragon/linode-manager/internal/linode"
)

// @title Linode Manager API
// @version 1.0
// @description Authenticated administrative gateway to the Linode API. Guards every management operation behind JWT session tokens issued to gateway operator accounts.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Load environment and configuration first ---
	if err := godotenv.Load(); err != nil {
		// .env is optional; environment variables still apply
		log.Debugf("No .env file loaded: %v", err)
	}
	if err := config.LoadConfig(); err != nil {
		log.New(os.Stderr).Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize logger based on config ---
	log.SetOutput(os.Stderr)
	log.SetTimeFormat("2006-01-02 15:04:05")

	switch strings.ToLower(config.AppConfig.LogLevel) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.Warnf("Invalid LOG_LEVEL '%s' specified in config, defaulting to 'info'", config.AppConfig.LogLevel)
		log.SetLevel(log.InfoLevel)
	}

	log.Infof("Configuration loaded successfully. Log level set to '%s'.", config.AppConfig.LogLevel)
	log.Debugf("API Port: %s", config.AppConfig.APIPort)
	log.Debugf("JWT Expiration: %s", config.AppConfig.JWTExpirationHours)
	log.Debugf("Linode API URL: %s", config.AppConfig.LinodeAPIURL)
	log.Debugf("Upstream timeout: %s", config.AppConfig.LinodeTimeoutSeconds)

	if config.AppConfig.JWTSecret == config.DefaultJWTSecret {
		log.Warn("Using default JWT secret. Change JWT_SECRET environment variable for production!")
	}
	if config.AppConfig.LinodeAPIToken == "" {
		log.Warn("LINODE_API_TOKEN is not set. All provider operations will fail until it is configured.")
	}

	// --- Initialize Gin router ---
	switch strings.ToLower(config.AppConfig.GinMode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	log.Infof("Gin running in '%s' mode", config.AppConfig.GinMode)

	router := gin.Default()

	// Configure trusted proxies
	if config.AppConfig.TrustedProxies == "nil" {
		log.Info("Proxy trust disabled (TRUSTED_PROXIES=nil)")
		router.SetTrustedProxies(nil)
	} else if config.AppConfig.TrustedProxies != "" {
		proxyList := strings.Split(config.AppConfig.TrustedProxies, ",")
		for i, proxy := range proxyList {
			proxyList[i] = strings.TrimSpace(proxy)
		}
		log.Infof("Setting trusted proxies: %v", proxyList)
		router.SetTrustedProxies(proxyList)
	} else {
		log.Warn("All proxies are trusted (default). Set TRUSTED_PROXIES=nil to disable proxy trust or provide a comma-separated list of trusted proxy IPs.")
	}

	// --- Wire components and routes ---
	store := auth.NewMemoryStore()
	client := linode.NewClient(
		config.AppConfig.LinodeAPIURL,
		config.AppConfig.LinodeAPIToken,
		config.AppConfig.LinodeTimeoutSeconds,
	)
	handler := api.NewHandler(store, client)
	api.SetupRoutes(router, handler)

	// Root banner for operators poking the API with curl
	router.GET("/", func(c *gin.Context) {
		protocol := "http"
		if config.AppConfig.TLSEnable || c.Request.Header.Get("X-Forwarded-Proto") == "https" {
			protocol = "https"
		}
		baseURL := fmt.Sprintf("%s://%s", protocol, c.Request.Host)

		c.JSON(http.StatusOK, gin.H{
			"message":        "Linode Manager API is running.",
			"login_endpoint": fmt.Sprintf("POST %s/auth/login", baseURL),
			"health":         fmt.Sprintf("GET %s/health", baseURL),
			"api_base_path":  baseURL,
		})
	})

	// --- Start the server ---
	listenAddr := fmt.Sprintf(":%s", config.AppConfig.APIPort)

	if config.AppConfig.TLSEnable {
		if config.AppConfig.TLSCertFile == "" || config.AppConfig.TLSKeyFile == "" {
			log.Fatalf("TLS is enabled but TLS_CERT_FILE or TLS_KEY_FILE is not set in config.")
		}
		if _, err := os.Stat(config.AppConfig.TLSCertFile); os.IsNotExist(err) {
			log.Fatalf("TLS cert file not found: %s", config.AppConfig.TLSCertFile)
		}
		if _, err := os.Stat(config.AppConfig.TLSKeyFile); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s", config.AppConfig.TLSKeyFile)
		}

		log.Infof("Starting HTTPS server on %s", listenAddr)
		if err := router.RunTLS(listenAddr, config.AppConfig.TLSCertFile, config.AppConfig.TLSKeyFile); err != nil {
			log.Fatalf("Failed to start HTTPS server: %v", err)
		}
	} else {
		log.Infof("Starting HTTP server on %s", listenAddr)
		if err := router.Run(listenAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}
}
