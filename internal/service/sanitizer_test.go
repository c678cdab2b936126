package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/mock"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func sanitizeOK(items ...string) models.SanitizeResponse {
	return models.SanitizeResponse{Success: true, SanitizedStrings: items}
}

func TestSanitizer_WritesBatchInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("a", "b", "c", "d", "e"), nil)

	clip := clipboard.NewMemory("U2FsdGVkX1...")
	s := service.NewSanitizer(backend, clip, config.Sanitizer{WriteInterval: 10 * time.Millisecond}, logger.Nop())

	start := time.Now()
	s.Sanitize(context.Background())
	elapsed := time.Since(start)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, clip.History())
	text, _ := clip.ReadText(context.Background())
	assert.Equal(t, "e", text)
	// four pauses between five writes
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestSanitizer_SingleItemHasNoPause(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("only"), nil)

	clip := clipboard.NewMemory("")
	s := service.NewSanitizer(backend, clip, config.Sanitizer{WriteInterval: time.Second}, logger.Nop())

	start := time.Now()
	s.Sanitize(context.Background())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, []string{"only"}, clip.History())
}

func TestSanitizer_SwallowsBackendFailures(t *testing.T) {
	tests := []struct {
		name string
		resp models.SanitizeResponse
		err  error
	}{
		{name: "unreachable", err: adapter.ErrUnreachable},
		{name: "server error", err: adapter.ErrInternalServerError},
		{name: "success false", resp: models.SanitizeResponse{Success: false, Error: "no decoys"}},
		{name: "empty batch", resp: sanitizeOK()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mock.NewMockBackendAdapter(ctrl)
			backend.EXPECT().Sanitize(gomock.Any()).Return(tt.resp, tt.err)

			clip := clipboard.NewMemory("secret-payload")
			s := service.NewSanitizer(backend, clip, config.Sanitizer{}, logger.Nop())

			assert.NotPanics(t, func() { s.Sanitize(context.Background()) })
			assert.Empty(t, clip.History())
		})
	}
}

func TestSanitizer_FailedWriteDoesNotStopBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	clip := mock.NewMockClipboard(ctrl)

	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("a", "b", "c"), nil)
	gomock.InOrder(
		clip.EXPECT().WriteText(gomock.Any(), "a").Return(nil),
		clip.EXPECT().WriteText(gomock.Any(), "b").Return(errors.New("clipboard busy")),
		clip.EXPECT().WriteText(gomock.Any(), "c").Return(nil),
	)

	s := service.NewSanitizer(backend, clip, config.Sanitizer{}, logger.Nop())
	s.Sanitize(context.Background())
}

func TestSanitizer_IgnoresCancellationAfterBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().Sanitize(gomock.Any()).DoAndReturn(func(context.Context) (models.SanitizeResponse, error) {
		cancel()
		return sanitizeOK("a", "b"), nil
	})

	clip := clipboard.NewMemory("")
	service.NewSanitizer(backend, clip, config.Sanitizer{}, logger.Nop()).Sanitize(ctx)

	assert.Equal(t, []string{"a", "b"}, clip.History())
}

func TestSanitizer_SerializedCyclesDoNotInterleave(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("a1", "a2", "a3"), nil)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("b1", "b2", "b3"), nil)

	clip := clipboard.NewMemory("")
	cfg := config.Sanitizer{WriteInterval: 5 * time.Millisecond, Serialize: boolPtr(true)}
	s := service.NewSanitizer(backend, clip, cfg, logger.Nop())

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Sanitize(context.Background())
		}()
	}
	wg.Wait()

	history := clip.History()
	assert.Len(t, history, 6)

	first, second := history[:3], history[3:]
	a := []string{"a1", "a2", "a3"}
	b := []string{"b1", "b2", "b3"}
	if first[0] == "a1" {
		assert.Equal(t, a, first)
		assert.Equal(t, b, second)
	} else {
		assert.Equal(t, b, first)
		assert.Equal(t, a, second)
	}
}

func TestSanitizer_UnserializedKeepsPerCycleOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("a1", "a2", "a3"), nil)
	backend.EXPECT().Sanitize(gomock.Any()).Return(sanitizeOK("b1", "b2", "b3"), nil)

	clip := clipboard.NewMemory("")
	cfg := config.Sanitizer{WriteInterval: 2 * time.Millisecond, Serialize: boolPtr(false)}
	s := service.NewSanitizer(backend, clip, cfg, logger.Nop())

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Sanitize(context.Background())
		}()
	}
	wg.Wait()

	var as, bs []string
	for _, v := range clip.History() {
		if v[0] == 'a' {
			as = append(as, v)
		} else {
			bs = append(bs, v)
		}
	}
	assert.Equal(t, []string{"a1", "a2", "a3"}, as)
	assert.Equal(t, []string{"b1", "b2", "b3"}, bs)
}
