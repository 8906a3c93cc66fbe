package envconfig

import "github.com/caarlos0/env/v11"

type i18nEnv struct {
	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en-GB"`
	MessagesPath  string `env:"I18N_MESSAGES_PATH"`
}

type i18n struct {
	raw i18nEnv
}

func NewI18nConfig() (*i18n, error) {
	var raw i18nEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &i18n{raw: raw}, nil
}

func (cfg *i18n) DefaultLocale() string { return cfg.raw.DefaultLocale }
func (cfg *i18n) MessagesPath() string  { return cfg.raw.MessagesPath }
