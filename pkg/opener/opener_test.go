//go:build unit

package opener

import (
	"errors"
	"path/filepath"
	"testing"

	fsmocks "github.com/lerenn/resource-cleaner/pkg/fs/mocks"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_GetOpener(t *testing.T) {
	tests := []struct {
		name        string
		openerName  string
		expectError bool
	}{
		{name: "system opener", openerName: SystemName},
		{name: "dummy opener", openerName: DummyName},
		{name: "unknown opener", openerName: "notepad", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			manager := NewManager(fsmocks.NewMockFS(ctrl), logger.NewNoopLogger())

			o, err := manager.GetOpener(tt.openerName)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnsupportedOpener)
				assert.Nil(t, o)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.openerName, o.Name())
			}
		})
	}
}

func TestManager_Open_Dummy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/proj/resource.h").Return(true, nil)

	manager := NewManager(mockFS, logger.NewNoopLogger())
	assert.NoError(t, manager.Open(DummyName, "/proj/resource.h", true))
}

func TestManager_Open_MissingPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/proj/missing.h").Return(false, nil)

	manager := NewManager(mockFS, logger.NewNoopLogger())
	assert.ErrorIs(t, manager.Open(DummyName, "/proj/missing.h", false), ErrPathNotFound)
}

func TestManager_Open_NotInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/proj").Return(true, nil)
	mockFS.EXPECT().Which(gomock.Any()).Return("", errors.New("not found"))

	manager := NewManager(mockFS, logger.NewNoopLogger())
	assert.ErrorIs(t, manager.Open("", "/proj", false), ErrOpenerNotInstalled)
}

func TestSystem_Command(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "linux", wantName: "xdg-open"},
		{goos: "freebsd", wantName: "xdg-open"},
		{goos: "darwin", wantName: "open"},
		{goos: "windows", wantName: "cmd", wantArgs: []string{"/c", "start", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			s := &System{goos: tt.goos}
			name, args := s.command()
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSystem_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	abs, err := filepath.Abs("resource.h")
	require.NoError(t, err)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExecuteCommand("xdg-open", abs).Return(nil)

	s := &System{fs: mockFS, goos: "linux"}
	assert.NoError(t, s.Open("resource.h"))
}

func TestSystem_Open_Windows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	abs, err := filepath.Abs("resource.h")
	require.NoError(t, err)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExecuteCommand("cmd", "/c", "start", "", abs).Return(nil)

	s := &System{fs: mockFS, goos: "windows"}
	assert.NoError(t, s.Open("resource.h"))
}

func TestSystem_Open_ExecutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExecuteCommand("open", gomock.Any()).Return(errors.New("exec: permission denied"))

	s := &System{fs: mockFS, goos: "darwin"}
	assert.ErrorIs(t, s.Open("resource.h"), ErrOpenerExecutionFailed)
}

func TestSystem_IsInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Which("open").Return("/usr/bin/open", nil)

	s := &System{fs: mockFS, goos: "darwin"}
	assert.True(t, s.IsInstalled())
}
