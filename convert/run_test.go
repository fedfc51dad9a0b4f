package convert

import (
	"strings"
	"testing"

	"prosong/config"
)

func TestResolveStrategy(t *testing.T) {
	tests := []struct {
		name         string
		cfgStrategy  config.Strategy
		cfgTemplate  string
		flagStrategy string
		flagTemplate string
		want         config.Strategy
		wantTemplate string
		wantErr      string
	}{
		{name: "auto without template", cfgStrategy: config.StrategyAuto, want: config.StrategyScratch},
		{name: "auto with configured template", cfgStrategy: config.StrategyAuto, cfgTemplate: "base.pro", want: config.StrategyTemplate, wantTemplate: "base.pro"},
		{name: "auto with flag template", cfgStrategy: config.StrategyAuto, flagTemplate: "flag.pro", want: config.StrategyTemplate, wantTemplate: "flag.pro"},
		{name: "flag overrides config", cfgStrategy: config.StrategyTemplate, cfgTemplate: "base.pro", flagStrategy: "scratch", want: config.StrategyScratch, wantTemplate: "base.pro"},
		{name: "flag template overrides config", cfgStrategy: config.StrategyTemplate, cfgTemplate: "base.pro", flagTemplate: "flag.pro", want: config.StrategyTemplate, wantTemplate: "flag.pro"},
		{name: "template without path", cfgStrategy: config.StrategyTemplate, wantErr: "requires a template"},
		{name: "unknown strategy flag", cfgStrategy: config.StrategyAuto, flagStrategy: "nonsense", wantErr: "bad strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Document.Strategy = tt.cfgStrategy
			cfg.Document.TemplatePath = tt.cfgTemplate

			got, gotTemplate, err := resolveStrategy(cfg, tt.flagStrategy, tt.flagTemplate)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("resolveStrategy() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveStrategy() error: %v", err)
			}
			if got != tt.want || gotTemplate != tt.wantTemplate {
				t.Errorf("resolveStrategy() = (%v, %q), want (%v, %q)", got, gotTemplate, tt.want, tt.wantTemplate)
			}
		})
	}
}
