package usecase_test

import "context"

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
