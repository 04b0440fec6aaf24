package application

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ecomdash/internal/dataset/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

type stubSource struct {
	ds  *domain.Dataset
	err error
}

func (s stubSource) Load(context.Context) (*domain.Dataset, error) { return s.ds, s.err }
func (s stubSource) Describe() string                              { return "stub" }

func TestLoaderService_Load(t *testing.T) {
	var buf bytes.Buffer
	logger := sharedinfra.NewLogger(sharedinfra.LoggerOptions{ServiceName: "test", Output: &buf})

	svc := NewLoaderService(stubSource{ds: &domain.Dataset{}}, logger)
	ds, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ds)
	require.Contains(t, buf.String(), `"source":"stub"`)
	require.Contains(t, buf.String(), "dataset loaded")
}

func TestLoaderService_LoadError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewLoaderService(stubSource{err: boom}, nil)

	ds, err := svc.Load(context.Background())
	require.ErrorIs(t, err, boom)
	require.Nil(t, ds)
}
