package config

import (
	"encoding/xml"
	"os"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<API REQUEST_DUMP="true">
    <CONTEXT>
        <PORT>8080</PORT>
        <HOST>0.0.0.0</HOST>
        <LOG_DIR>logs</LOG_DIR>
    </CONTEXT>
    <SCORING>
        <DASS21_TOTAL_IS_SUM>true</DASS21_TOTAL_IS_SUM>
        <INTERVENTION_BAND>Moderate</INTERVENTION_BAND>
        <CFQ_INTERVENTION_BAND>Elevated</CFQ_INTERVENTION_BAND>
    </SCORING>
    <RATE_LIMIT>
        <REQUESTS_PER_SECOND>5</REQUESTS_PER_SECOND>
        <BURST>10</BURST>
    </RATE_LIMIT>
    <DB>
        <HOST>localhost</HOST>
        <PORT>5432</PORT>
        <NAMES MINDCARE="mindcare"/>
        <USERNAME>mindcare</USERNAME>
        <PASSWORD TYPE="env">TEST_DB_PASSWORD</PASSWORD>
    </DB>
</API>`

func TestScoringSectionParses(t *testing.T) {
	var cfg APIConfig
	if err := xml.Unmarshal([]byte(sampleXML), &cfg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !cfg.Scoring.Dass21TotalIsSum {
		t.Error("DASS21_TOTAL_IS_SUM not parsed")
	}
	if cfg.Scoring.InterventionBand != "Moderate" {
		t.Errorf("intervention band = %q, want Moderate", cfg.Scoring.InterventionBand)
	}
	if cfg.Scoring.CFQInterventionBand != "Elevated" {
		t.Errorf("CFQ intervention band = %q, want Elevated", cfg.Scoring.CFQInterventionBand)
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	if !cfg.RequestDump {
		t.Error("REQUEST_DUMP attribute not parsed")
	}
}

func TestDBPasswordResolve(t *testing.T) {
	literal := DBPassword{Value: "plain-secret"}
	if got := literal.Resolve(); got != "plain-secret" {
		t.Errorf("literal password = %q", got)
	}

	t.Setenv("TEST_DB_PASSWORD", "from-env")
	env := DBPassword{Type: "env", Value: "TEST_DB_PASSWORD"}
	if got := env.Resolve(); got != "from-env" {
		t.Errorf("env password = %q, want from-env", got)
	}

	os.Unsetenv("TEST_DB_PASSWORD")
	if got := env.Resolve(); got != "" {
		t.Errorf("unset env password = %q, want empty", got)
	}
}
