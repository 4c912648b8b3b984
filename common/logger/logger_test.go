package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/heronames/core/config"
)

var _ = Describe("WithLogFields", func() {
	It("merges newer non-empty values over existing ones", func() {
		ctx := WithLogFields(context.Background(), LogFields{
			RequestID: Ptr("1"),
			Component: "heronames.http",
		})
		ctx = WithLogFields(ctx, LogFields{
			Animal:    Ptr("tiger"),
			Component: "heronames.service.generation",
		})

		fields := GetLogFields(ctx)
		Expect(*fields.RequestID).To(Equal("1"))
		Expect(*fields.Animal).To(Equal("tiger"))
		Expect(fields.Model).To(BeNil())
		Expect(fields.Component).To(Equal("heronames.service.generation"))
	})

	It("returns empty fields for a bare context", func() {
		Expect(GetLogFields(context.Background())).To(Equal(LogFields{}))
	})
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		var buf bytes.Buffer
		log := slog.New(newHandler(config.Config{Env: "production"}, &buf))

		ctx := WithLogFields(context.Background(), LogFields{
			RequestID: Ptr("42"),
			Animal:    Ptr("shark"),
			Component: "heronames.test",
		})
		log.InfoContext(ctx, "hello")

		var record map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &record)).To(Succeed())
		Expect(record).To(HaveKeyWithValue("msg", "hello"))
		Expect(record).To(HaveKeyWithValue("request_id", "42"))
		Expect(record).To(HaveKeyWithValue("animal", "shark"))
		Expect(record).To(HaveKeyWithValue("component", "heronames.test"))
		Expect(record).NotTo(HaveKey("trace_id"))
	})
})

var _ = Describe("Truncate", func() {
	DescribeTable("shortens long strings",
		func(input string, maxLen int, expected string) {
			Expect(Truncate(input, maxLen)).To(Equal(expected))
		},
		Entry("short string unchanged", "abc", 5, "abc"),
		Entry("exact length unchanged", "abcde", 5, "abcde"),
		Entry("long string truncated", "abcdefgh", 3, "abc..."),
	)
})
