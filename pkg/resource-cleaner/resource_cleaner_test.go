//go:build unit

package rescleaner

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/resource-cleaner/pkg/config"
	configmocks "github.com/lerenn/resource-cleaner/pkg/config/mocks"
	"github.com/lerenn/resource-cleaner/pkg/dependencies"
	fsmocks "github.com/lerenn/resource-cleaner/pkg/fs/mocks"
	"github.com/lerenn/resource-cleaner/pkg/hooks"
	hooksmocks "github.com/lerenn/resource-cleaner/pkg/hooks/mocks"
	openermocks "github.com/lerenn/resource-cleaner/pkg/opener/mocks"
	"github.com/lerenn/resource-cleaner/pkg/prompt"
	promptmocks "github.com/lerenn/resource-cleaner/pkg/prompt/mocks"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	fs     *fsmocks.MockFS
	config *configmocks.MockManager
	prompt *promptmocks.MockPrompter
	hooks  *hooksmocks.MockHookManagerInterface
	opener *openermocks.MockManagerInterface
}

func newMockedCleaner(t *testing.T) (ResourceCleaner, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		fs:     fsmocks.NewMockFS(ctrl),
		config: configmocks.NewMockManager(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		hooks:  hooksmocks.NewMockHookManagerInterface(ctrl),
		opener: openermocks.NewMockManagerInterface(ctrl),
	}

	rc, err := NewResourceCleaner(NewResourceCleanerParams{
		Dependencies: dependencies.New().
			WithFS(m.fs).
			WithConfig(m.config).
			WithPrompt(m.prompt).
			WithHookManager(m.hooks).
			WithOpener(m.opener),
	})
	require.NoError(t, err)

	return rc, m
}

func TestNewResourceCleaner_MissingConfig(t *testing.T) {
	_, err := NewResourceCleaner(NewResourceCleanerParams{})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestAnalyzeAndRenumber_InvalidRootRunsErrorHooks(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	m.fs.EXPECT().IsDir("/missing").Return(false, nil)

	gomock.InOrder(
		m.hooks.EXPECT().ExecutePreHooks(consts.Analyze, gomock.Any()).
			DoAndReturn(func(_ string, ctx *hooks.HookContext) error {
				assert.Equal(t, "/missing", ctx.Parameters["rootPath"])
				assert.Equal(t, false, ctx.Parameters["apply"])
				assert.Contains(t, ctx.Metadata, hooks.MetadataStartedAt)
				return nil
			}),
		m.hooks.EXPECT().ExecuteErrorHooks(consts.Analyze, gomock.Any()).
			DoAndReturn(func(_ string, ctx *hooks.HookContext) error {
				assert.ErrorIs(t, ctx.Error, ErrInvalidRoot)
				assert.Nil(t, ctx.Results["success"])
				return nil
			}),
	)

	res, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: "/missing"})
	assert.ErrorIs(t, err, ErrInvalidRoot)
	assert.Nil(t, res)
}

func TestAnalyzeAndRenumber_ApplyUsesApplyOperation(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	m.fs.EXPECT().IsDir("").Times(0)
	m.hooks.EXPECT().ExecutePreHooks(consts.Apply, gomock.Any()).Return(nil)
	m.hooks.EXPECT().ExecuteErrorHooks(consts.Apply, gomock.Any()).Return(nil)

	_, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{Apply: true})
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestAnalyzeAndRenumber_PreHookFailureSkipsOperation(t *testing.T) {
	rc, m := newMockedCleaner(t)

	hookErr := errors.New("pre-hook refused")
	m.hooks.EXPECT().ExecutePreHooks(consts.Analyze, gomock.Any()).Return(hookErr)

	_, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: "/proj"})
	assert.ErrorIs(t, err, hookErr)
}

func TestAnalyzeAndRenumber_RecoversPanics(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Analyze, gomock.Any()).Return(nil)
	m.config.EXPECT().GetConfigWithFallback().DoAndReturn(func() (config.Config, error) {
		panic("corrupted state")
	})
	m.hooks.EXPECT().ExecuteErrorHooks(consts.Analyze, gomock.Any()).Return(nil)

	_, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: "/proj"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in Analyze: corrupted state")
}

func TestAnalyzeAndRenumber_ConfigError(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Analyze, gomock.Any()).Return(nil)
	m.config.EXPECT().GetConfigWithFallback().Return(config.Config{}, config.ErrConfigFileParse)
	m.hooks.EXPECT().ExecuteErrorHooks(consts.Analyze, gomock.Any()).Return(nil)

	_, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: "/proj"})
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestInit_Interactive(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Init, gomock.Any()).Return(nil)
	m.config.EXPECT().GetConfigPath().Return("~/.rc/config.yaml")
	m.prompt.EXPECT().PromptForPath(gomock.Any(), "~/.rc/config.yaml").Return("~/work/rc.toml", nil)
	m.fs.EXPECT().ExpandPath("~/work/rc.toml").Return("/home/dev/work/rc.toml", nil)
	m.config.EXPECT().SetConfigPath("/home/dev/work/rc.toml")
	m.config.EXPECT().WriteDefault(false).Return(nil)
	m.hooks.EXPECT().ExecutePostHooks(consts.Init, gomock.Any()).
		DoAndReturn(func(_ string, ctx *hooks.HookContext) error {
			assert.Equal(t, "/home/dev/work/rc.toml", ctx.Results["configPath"])
			assert.Equal(t, true, ctx.Results["success"])
			return nil
		})

	assert.NoError(t, rc.Init(InitOpts{}))
}

func TestInit_NonInteractiveExisting(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Init, gomock.Any()).Return(nil)
	m.config.EXPECT().GetConfigPath().Return("/home/dev/.rc/config.yaml")
	m.fs.EXPECT().ExpandPath("/home/dev/.rc/config.yaml").Return("/home/dev/.rc/config.yaml", nil)
	m.config.EXPECT().SetConfigPath("/home/dev/.rc/config.yaml")
	m.config.EXPECT().WriteDefault(false).Return(config.ErrConfigExists)
	m.hooks.EXPECT().ExecuteErrorHooks(consts.Init, gomock.Any()).Return(nil)

	assert.ErrorIs(t, rc.Init(InitOpts{NonInteractive: true}), ErrConfigExists)
}

func TestInit_Force(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Init, gomock.Any()).Return(nil)
	m.config.EXPECT().GetConfigPath().Return("/etc/rc.yaml")
	m.fs.EXPECT().ExpandPath("/etc/rc.yaml").Return("/etc/rc.yaml", nil)
	m.config.EXPECT().SetConfigPath("/etc/rc.yaml")
	m.config.EXPECT().WriteDefault(true).Return(nil)
	m.hooks.EXPECT().ExecutePostHooks(consts.Init, gomock.Any()).Return(nil)

	assert.NoError(t, rc.Init(InitOpts{NonInteractive: true, Force: true}))
}

func TestSelectRoot(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.SelectRoot, gomock.Any()).Return(nil)
	m.prompt.EXPECT().PromptSelectFolder(".").Return("/proj/app", nil)
	m.hooks.EXPECT().ExecutePostHooks(consts.SelectRoot, gomock.Any()).Return(nil)

	root, err := rc.SelectRoot(".")
	require.NoError(t, err)
	assert.Equal(t, "/proj/app", root)
}

func TestSelectRoot_Cancelled(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.SelectRoot, gomock.Any()).Return(nil)
	m.prompt.EXPECT().PromptSelectFolder(".").Return("", prompt.ErrNoSelection)
	m.hooks.EXPECT().ExecuteErrorHooks(consts.SelectRoot, gomock.Any()).Return(nil)

	root, err := rc.SelectRoot(".")
	assert.ErrorIs(t, err, ErrNoRootSelected)
	assert.Empty(t, root)
}

func TestOpen(t *testing.T) {
	rc, m := newMockedCleaner(t)

	m.hooks.EXPECT().ExecutePreHooks(consts.Open, gomock.Any()).Return(nil)
	m.opener.EXPECT().Open("dummy", "/proj/resource.h", true).Return(nil)
	m.hooks.EXPECT().ExecutePostHooks(consts.Open, gomock.Any()).Return(nil)

	assert.NoError(t, rc.Open(OpenParams{Path: "/proj/resource.h", OpenerName: "dummy"}))
}

func TestOpen_Failure(t *testing.T) {
	rc, m := newMockedCleaner(t)

	openErr := errors.New("no handler")
	m.hooks.EXPECT().ExecutePreHooks(consts.Open, gomock.Any()).Return(nil)
	m.opener.EXPECT().Open("", "/proj/resource.h", true).Return(openErr)
	m.hooks.EXPECT().ExecuteErrorHooks(consts.Open, gomock.Any()).Return(nil)

	assert.ErrorIs(t, rc.Open(OpenParams{Path: "/proj/resource.h"}), openErr)
}
