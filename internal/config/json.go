package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as strings ("15m", "30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		EncryptionSecret string   `json:"encryption_secret"`
		EncryptionSalt   string   `json:"encryption_salt"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Limit         int      `json:"limit"`
		Window        Duration `json:"window"`
		PruneInterval Duration `json:"prune_interval"`
	} `json:"rate_limit,omitempty"`

	Email struct {
		ProviderURL     string   `json:"provider_url"`
		APIKey          string   `json:"api_key"`
		FromAddress     string   `json:"from_address"`
		PracticeAddress string   `json:"practice_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"email,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionSecret: jsonCfg.App.EncryptionSecret,
			EncryptionSalt:   jsonCfg.App.EncryptionSalt,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		RateLimit: RateLimit{
			Limit:         jsonCfg.RateLimit.Limit,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			PruneInterval: time.Duration(jsonCfg.RateLimit.PruneInterval),
		},
		Email: Email{
			ProviderURL:     jsonCfg.Email.ProviderURL,
			APIKey:          jsonCfg.Email.APIKey,
			FromAddress:     jsonCfg.Email.FromAddress,
			PracticeAddress: jsonCfg.Email.PracticeAddress,
			RequestTimeout:  time.Duration(jsonCfg.Email.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
