package src

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/ChronoRixun/devyan/src/ui"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrEmptyRequest is returned when a run is started with a blank description.
var ErrEmptyRequest = errors.New("project description is empty")

// Run drives one generation pipeline from description to written project.
type Run struct {
	cfg     Config
	client  ChatClient
	request string
	emit    func(string)
	log     zerolog.Logger
	id      uuid.UUID
	now     func() time.Time

	// Populated by Execute.
	Dir     string
	Report  WriteReport
	Success bool
}

// NewRun prepares a pipeline run. emit may be nil for silent runs.
func NewRun(cfg Config, client ChatClient, request string, emit func(string), log zerolog.Logger) *Run {
	return &Run{
		cfg:     cfg,
		client:  client,
		request: strings.TrimSpace(request),
		emit:    emit,
		log:     log,
		id:      uuid.New(),
		now:     time.Now,
	}
}

func (r *Run) say(format string, args ...any) {
	if r.emit != nil {
		r.emit(fmt.Sprintf(format, args...))
	}
}

// slugify derives a directory slug from the first three words of the
// request, keeping lowercase alphanumerics and capping at 30 runes.
func slugify(request string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(request)) {
		var b strings.Builder
		for _, c := range w {
			if unicode.IsLower(c) || unicode.IsDigit(c) {
				b.WriteRune(c)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
		if len(words) == 3 {
			break
		}
	}
	slug := strings.Join(words, "_")
	if slug == "" {
		return "project"
	}
	if len(slug) > 30 {
		slug = slug[:30]
	}
	return slug
}

// Execute runs the full pipeline: generate, assemble, persist, report.
// A panic anywhere inside is converted into a failed run.
func (r *Run) Execute(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Msg("run panicked")
			r.say("❌ Generation failed: %v", rec)
			err = fmt.Errorf("generation panicked: %v", rec)
		}
	}()

	if r.request == "" {
		return ErrEmptyRequest
	}

	started := r.now()
	r.Dir = filepath.Join(r.cfg.OutputDir,
		"direct_"+slugify(r.request)+"_"+started.Format("20060102_150405"))

	r.log.Info().Str("run", r.id.String()).Str("dir", r.Dir).Msg("starting run")
	r.say("🚀 Starting project generation")
	r.say("📂 Target: %s", r.Dir)

	// Phase 1: generate all four artifacts in order.
	r.say("")
	r.say("📋 Phase 1: Content generation")
	gen := NewGenerator(r.client, r.request, r.emit)
	architecture := gen.GenerateArchitecture(ctx)
	code := gen.GenerateCode(ctx, architecture)
	tests := gen.GenerateTests(ctx, code)
	docs := gen.GenerateDocumentation(ctx)
	content := ProjectContent{
		Architecture:  architecture,
		Code:          code,
		Tests:         tests,
		Documentation: docs,
	}

	// Phase 2: if any artifact misses its floor, swap in the full
	// fallback set so the project stays internally consistent.
	r.say("")
	r.say("🔍 Phase 2: Content validation")
	if !content.Validate() {
		r.log.Warn().Msg("generated content below thresholds, using fallback set")
		r.say("⚠️ Generated content incomplete, switching to fallback project")
		content = FallbackContent(r.request)
	} else {
		r.say("✅ All content passed validation")
	}

	// Phase 3: persist.
	r.say("")
	r.say("💾 Phase 3: Writing project files")
	writer, werr := NewWriter(r.Dir, r.log)
	if werr != nil {
		r.say("❌ Could not create project directory: %v", werr)
		return werr
	}
	r.Report = writer.WriteAll(content)
	r.Success = r.Report.Complete()

	r.report(r.now().Sub(started))
	return nil
}

func (r *Run) report(elapsed time.Duration) {
	r.say("")
	r.say("📊 Generation report")
	for _, name := range outputOrder {
		size := r.Report[name]
		if size > 0 {
			r.say("  ✅ %s (%s)", name, ui.HumanSize(int64(size)))
		} else {
			r.say("  ❌ %s (write failed)", name)
		}
	}
	rate := float64(r.Report.Successful()) / float64(len(outputOrder)) * 100
	r.say("")
	r.say("📈 Success rate: %.0f%% (%d/%d files)", rate, r.Report.Successful(), len(outputOrder))
	r.say("📦 Total size: %s", ui.HumanSize(int64(r.Report.TotalBytes())))
	r.say("⏱️ Elapsed: %s", elapsed.Round(time.Millisecond))
	if r.Success {
		r.say("🎉 Project generated at %s", r.Dir)
	} else {
		r.say("⚠️ Project generated with missing files at %s", r.Dir)
	}

	r.log.Info().
		Str("run", r.id.String()).
		Int("files", r.Report.Successful()).
		Int("bytes", r.Report.TotalBytes()).
		Dur("elapsed", elapsed).
		Bool("success", r.Success).
		Msg("run finished")
}
