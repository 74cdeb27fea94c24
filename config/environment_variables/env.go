package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type EnvironmentVariable struct {
	API_PORT string

	CACHE_TYPE     string
	CACHE_URL      string
	CACHE_PASSWORD string
	CACHE_DB       string
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string

	DB_POSTGRESQL_WRITE_DSN string
	DB_POSTGRESQL_READ1_DSN string
	ENABLE_AUTO_MIGRATE     bool

	OLAP_BASE_URL    string
	OLAP_USER        string
	OLAP_PASSWORD    string
	GAME_WS_BASE_URL string
	GAME_WS_SESSION  string
	HTTP_RETRY_COUNT int

	RENDERER_BIN_PATH string
	RENDERER_PORT     string

	ALLOWED_CORS_HOSTS []string
	ADMIN_JWT_SECRET   []byte
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			fmt.Printf("Missing SYSENV: %s\n", envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Bool:
			if parsed, err := strconv.ParseBool(envValue); err == nil {
				v.Field(i).SetBool(parsed)
			}
		case reflect.Int:
			if parsed, err := strconv.Atoi(envValue); err == nil {
				v.Field(i).SetInt(int64(parsed))
			}
		case reflect.Slice:
			switch field.Type.Elem().Kind() {
			case reflect.Uint8:
				v.Field(i).SetBytes([]byte(envValue))
			case reflect.String:
				v.Field(i).Set(reflect.ValueOf(strings.Split(envValue, ",")))
			}
		}
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
