package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_initConfig(t *testing.T) {
	if wd, err := os.Getwd(); err != nil {
		t.Error(err)
	} else {
		configFile = wd + "/../../config/raftmeta.example.yaml"
	}
	initConfig()
	assert.EqualValues(t, "localhost:8080", appConfig.BindAddress)
	assert.EqualValues(t, "/var/lib/raftmeta", appConfig.DataDir)
	assert.EqualValues(t, 10*time.Second, appConfig.ShutdownTimeout)
}
