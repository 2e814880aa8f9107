package docbook

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

// memorySink records every call made to it
type memorySink struct {
	mu          sync.Mutex
	templates   []string
	appends     []string
	templateErr error
	appendErr   error
}

func (s *memorySink) WriteTemplate(ctx context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, content)
	return s.templateErr
}

func (s *memorySink) Append(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appends = append(s.appends, text)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRenderer(opts *config.Options) *Renderer {
	if opts == nil {
		opts = config.Default()
	}
	return NewRenderer(RendererConfig{Options: opts, Logger: quietLogger()})
}

// scenarioUnit is unit "A" with message M{id, tag} and nested enum E
func scenarioUnit() *schema.Unit {
	return &schema.Unit{
		Name: "A",
		Messages: []*schema.Message{
			{
				Name:     "M",
				FullName: "M",
				Fields: []*schema.Field{
					{Name: "id", Number: 1, Label: schema.LabelRequired, Kind: schema.KindInt32, Default: int32(5)},
					{Name: "tag", Number: 2, Label: schema.LabelRepeated, Kind: schema.KindString},
				},
				Enums: []*schema.Enum{
					{
						Name:     "E",
						FullName: "M.E",
						Values: []*schema.EnumValue{
							{Name: "ZERO", Number: 0},
							{Name: "ONE", Number: 1},
						},
					},
				},
			},
		},
	}
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

// bodyRows returns the <row> blocks inside <tbody>
func bodyRows(section string) []string {
	_, body, found := strings.Cut(section, "<tbody>\n")
	if !found {
		return nil
	}
	body, _, _ = strings.Cut(body, "</tbody>")

	var rows []string
	for _, block := range strings.Split(body, "</row>") {
		if strings.Contains(block, "<row>") {
			rows = append(rows, block)
		}
	}
	return rows
}
