package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"FIREBASE_PROJECT_ID": "torneos-dev",
		"JWT_SECRET":          "0123456789abcdef0123456789abcdef",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, StoreFirestore, cfg.StoreDriver)
	assert.Equal(t, AuthJWT, cfg.AuthProvider)
	assert.Equal(t, "torneos", cfg.MongoDatabase)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.CORSHosts)
	assert.True(t, cfg.NeedsFirebase())
}

func TestFromEnvMongoWithFirebaseAuth(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":                "8080",
		"STORE_DRIVER":        "mongo",
		"MONGO_URI":           "mongodb://localhost:27017",
		"AUTH_PROVIDER":       "firebase",
		"FIREBASE_PROJECT_ID": "torneos-dev",
		"CORS_HOSTS":          "https://a.example, https://b.example,",
		"LOG_LEVEL":           "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSHosts)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.NeedsFirebase())
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":                {"PORT": "http", "STORE_DRIVER": "memory", "JWT_SECRET": "0123456789abcdef0123456789abcdef"},
		"port range":              {"PORT": "70000", "STORE_DRIVER": "memory", "JWT_SECRET": "0123456789abcdef0123456789abcdef"},
		"weak secret":             {"STORE_DRIVER": "memory", "JWT_SECRET": "short"},
		"unknown store":           {"STORE_DRIVER": "postgres", "JWT_SECRET": "0123456789abcdef0123456789abcdef"},
		"mongo needs uri":         {"STORE_DRIVER": "mongo", "JWT_SECRET": "0123456789abcdef0123456789abcdef"},
		"firestore needs project": {"JWT_SECRET": "0123456789abcdef0123456789abcdef"},
		"unknown auth":            {"STORE_DRIVER": "memory", "AUTH_PROVIDER": "ldap"},
		"bad log level":           {"STORE_DRIVER": "memory", "JWT_SECRET": "0123456789abcdef0123456789abcdef", "LOG_LEVEL": "loud"},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(values))
			assert.Error(t, err)
		})
	}
}
