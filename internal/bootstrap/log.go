package bootstrap

import (
	"io"
	stdlog "log"
	"os"

	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

func init() {
	formatter := log.TextFormatter{
		EnvironmentOverrideColors: true,
		TimestampFormat:           "2006-01-02 15:04:05",
		FullTimestamp:             true,
	}
	log.SetFormatter(&formatter)
}

// Log configures logrus from conf.Conf. Without debug the console only gets
// warnings so log lines do not tear the progress display.
func Log() {
	l := log.StandardLogger()
	if conf.Conf.Debug {
		l.SetLevel(log.DebugLevel)
		l.SetReportCaller(true)
	} else {
		l.SetLevel(log.WarnLevel)
		l.SetReportCaller(false)
	}
	logConfig := conf.Conf.Log
	if logConfig.Enable {
		var w io.Writer = &lumberjack.Logger{
			Filename:   logConfig.Name,
			MaxSize:    logConfig.MaxSize, // megabytes
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge, //days
			Compress:   logConfig.Compress,
		}
		if conf.Conf.Debug {
			w = io.MultiWriter(os.Stderr, w)
		} else {
			// the file is not shared with the progress display
			l.SetLevel(log.InfoLevel)
		}
		l.SetOutput(w)
	}
	stdlog.SetOutput(l.Out)
	log.Debugf("init logrus...")
}
