package otel

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/heronames/core/config"
)

var _ = Describe("Setup", func() {
	It("is a no-op without an endpoint", func() {
		telemetry, err := Setup(context.Background(), config.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(telemetry).To(BeNil())
		Expect(telemetry.Shutdown(context.Background())).To(Succeed())
	})
})

var _ = Describe("parseHeaders", func() {
	DescribeTable("parses OTLP header lists",
		func(input string, expected map[string]string) {
			Expect(parseHeaders(input)).To(Equal(expected))
		},
		Entry("empty", "", map[string]string{}),
		Entry("single pair", "api-key=abc", map[string]string{"api-key": "abc"}),
		Entry("trims whitespace", " a = 1 , b=2", map[string]string{"a": "1", "b": "2"}),
		Entry("keeps '=' inside values", "auth=Basic x==", map[string]string{"auth": "Basic x=="}),
		Entry("skips malformed pairs", "novalue,a=1", map[string]string{"a": "1"}),
	)
})
