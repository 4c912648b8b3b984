package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/heronames/core/config"
)

// setEnv sets or clears an env var for the duration of the current test.
func setEnv(key string, value *string) {
	prev, had := os.LookupEnv(key)
	if value == nil {
		Expect(os.Unsetenv(key)).To(Succeed())
	} else {
		Expect(os.Setenv(key, *value)).To(Succeed())
	}
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func ptr(s string) *string { return &s }

var _ = Describe("Load", func() {
	BeforeEach(func() {
		setEnv("HERONAMES_ENV", ptr("test"))
		setEnv("PORT", nil)
		setEnv("OPENAI_MODEL", nil)
		setEnv("OPENAI_BASE_URL", nil)
		setEnv("OTEL_SERVICE_NAME", nil)
		setEnv("OTEL_EXPORTER_OTLP_ENDPOINT", nil)
	})

	It("fails fast when OPENAI_API_KEY is missing", func() {
		setEnv("OPENAI_API_KEY", nil)

		_, err := config.Load(config.ServiceTypeAPI)
		Expect(err).To(MatchError(config.ErrMissingAPIKey))
	})

	It("fails when OPENAI_API_KEY is empty", func() {
		setEnv("OPENAI_API_KEY", ptr(""))

		_, err := config.Load(config.ServiceTypeWeb)
		Expect(err).To(MatchError(config.ErrMissingAPIKey))
	})

	It("uses port 8050 for the api service by default", func() {
		setEnv("OPENAI_API_KEY", ptr("sk-test"))

		cfg, err := config.Load(config.ServiceTypeAPI)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Port).To(Equal("8050"))
		Expect(cfg.OpenAI.APIKey).To(Equal("sk-test"))
		Expect(cfg.OpenAI.Model).To(Equal("gpt-3.5-turbo-0125"))
		Expect(cfg.OTel.ServiceName).To(Equal("heronames-api"))
		Expect(cfg.OTel.Enabled()).To(BeFalse())
	})

	It("honours overrides from the environment", func() {
		setEnv("OPENAI_API_KEY", ptr("sk-test"))
		setEnv("PORT", ptr("9000"))
		setEnv("OPENAI_MODEL", ptr("gpt-4o-mini"))
		setEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ptr("http://collector:4318"))

		cfg, err := config.Load(config.ServiceTypeWeb)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Port).To(Equal("9000"))
		Expect(cfg.OpenAI.Model).To(Equal("gpt-4o-mini"))
		Expect(cfg.OTel.ServiceName).To(Equal("heronames-web"))
		Expect(cfg.OTel.Enabled()).To(BeTrue())
		Expect(cfg.IsDevelopment()).To(BeFalse())
	})
})
