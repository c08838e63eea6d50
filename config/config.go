package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig    `yaml:"logging"`
	MongoURI    string           `yaml:"mongo_uri"`
	MongoDBName string           `yaml:"mongo_db_name"`
	GeminiModel string           `yaml:"gemini_model"`
	Categorize  CategorizeConfig `yaml:"categorize"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CategorizeConfig 는 카테고리 태깅 파이프라인의 속도/규모 한도를 정의한다.
type CategorizeConfig struct {
	// BatchSize 는 배치 한 번에 선택하는 미분류 프롬프트 최대 개수이다.
	// 0 이하이면 기본값 50을 사용한다.
	BatchSize int `yaml:"batch_size"`

	// RequestsPerMinute 는 게이트웨이 호출에 대한 분당 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다. (200이면 호출 간격 약 300ms)
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 게이트웨이 호출에 대한 일일 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`

	// GatewayTimeoutSeconds 는 게이트웨이 호출 1회에 대한 타임아웃이다.
	// 0 이하이면 기본값 30초를 사용한다.
	GatewayTimeoutSeconds int `yaml:"gateway_timeout_seconds"`
}

const (
	DefaultBatchSize             = 50
	DefaultGatewayTimeoutSeconds = 30
)

// EffectiveBatchSize returns batch_size with the default applied.
func (c CategorizeConfig) EffectiveBatchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}

// EffectiveGatewayTimeoutSeconds returns gateway_timeout_seconds with the default applied.
func (c CategorizeConfig) EffectiveGatewayTimeoutSeconds() int {
	if c.GatewayTimeoutSeconds <= 0 {
		return DefaultGatewayTimeoutSeconds
	}
	return c.GatewayTimeoutSeconds
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c

	InitLogger(c.Logging)
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
