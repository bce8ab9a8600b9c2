package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenListTeam/gofile-uploader/drivers/base"
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var envKeys = []string{
	"API_KEY", "API_URL", "UPLOAD_URL", "ZONE",
	"DISCOVERY_TIMEOUT", "UPLOAD_TIMEOUT", "UPLOAD_LIMIT", "DEBUG",
	"LOG_ENABLE", "LOG_NAME",
}

// clearEnv unsets every GOFILE_ variable for the test and restores it after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		key := conf.EnvPrefix + k
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitConfig_Defaults(t *testing.T) {
	clearEnv(t)
	require.NoError(t, InitConfig(""))
	assert.Equal(t, conf.DefaultConfig(), conf.Conf)
	assert.NotNil(t, base.RestyClient)
	assert.NotNil(t, base.TransferClient)
}

func TestInitConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOFILE_API_KEY", "secret")
	t.Setenv("GOFILE_ZONE", "eu")
	t.Setenv("GOFILE_DISCOVERY_TIMEOUT", "3s")
	t.Setenv("GOFILE_UPLOAD_LIMIT", "512")
	t.Setenv("GOFILE_LOG_ENABLE", "true")

	require.NoError(t, InitConfig(""))
	assert.Equal(t, "secret", conf.Conf.Token)
	assert.Equal(t, "eu", conf.Conf.Zone)
	assert.Equal(t, 3*time.Second, conf.Conf.DiscoveryTimeout)
	assert.Equal(t, 30*time.Second, conf.Conf.UploadTimeout)
	assert.Equal(t, 512, conf.Conf.UploadLimit)
	assert.True(t, conf.Conf.Log.Enable)
	assert.Equal(t, conf.DefaultAPIURL, conf.Conf.APIURL)
}

func TestInitConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), conf.EnvFile)
	require.NoError(t, os.WriteFile(envFile, []byte("GOFILE_API_KEY=from-file\nGOFILE_ZONE=na\n"), 0o600))
	t.Setenv("GOFILE_ZONE", "eu")

	require.NoError(t, InitConfig(envFile))
	assert.Equal(t, "from-file", conf.Conf.Token)
	assert.Equal(t, "eu", conf.Conf.Zone, "environment wins over the env file")
}

func TestInitConfig_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	assert.NoError(t, InitConfig(filepath.Join(t.TempDir(), conf.EnvFile)))
}

func TestInitConfig_UnreadableEnvFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o755))
	envFile := filepath.Join(dir, conf.EnvFile)
	require.NoError(t, os.WriteFile(envFile, []byte("GOFILE_ZONE=na\n"), 0o600))
	require.NoError(t, os.Chmod(dir, 0))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	require.NoError(t, InitConfig(envFile))
	assert.Empty(t, conf.Conf.Zone)
}

func TestInitConfig_DebugLogs(t *testing.T) {
	clearEnv(t)
	out := log.StandardLogger().Out
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetLevel(log.InfoLevel)
		log.SetReportCaller(false)
	})
	envFile := filepath.Join(t.TempDir(), conf.EnvFile)
	require.NoError(t, os.WriteFile(envFile, []byte("GOFILE_DEBUG=true\nGOFILE_API_KEY=secret\n"), 0o600))
	hook := test.NewGlobal()
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })

	require.NoError(t, InitConfig(envFile))
	assert.True(t, conf.Conf.Debug)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	require.Len(t, messages, 3)
	assert.Contains(t, messages, "init logrus...")
	assert.Contains(t, messages, "loaded env file: "+envFile)
	assert.Contains(t, messages[2], "config: ")
	assert.NotContains(t, messages[2], "secret")
}

func TestInitConfig_BadValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOFILE_UPLOAD_TIMEOUT", "soon")
	assert.Error(t, InitConfig(""))
}

func TestRedacted(t *testing.T) {
	c := conf.Config{Token: "secret", Zone: "eu"}
	r := redacted(c)
	assert.Equal(t, "******", r.Token)
	assert.Equal(t, "eu", r.Zone)
	assert.Equal(t, "secret", c.Token)
}

func TestLog_Levels(t *testing.T) {
	out := log.StandardLogger().Out
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetLevel(log.InfoLevel)
		log.SetReportCaller(false)
	})

	conf.Conf = conf.DefaultConfig()
	Log()
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	conf.Conf.Debug = true
	Log()
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	conf.Conf = conf.DefaultConfig()
	conf.Conf.Log.Enable = true
	conf.Conf.Log.Name = filepath.Join(t.TempDir(), "up.log")
	Log()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	log.Info("hello")
	data, err := os.ReadFile(conf.Conf.Log.Name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
