package logging

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"
)

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)

	var level Level
	test.That(t, json.Unmarshal([]byte(`"warn"`), &level), test.ShouldBeNil)
	test.That(t, level, test.ShouldEqual, WARN)
	out, err := json.Marshal(ERROR)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldEqual, `"error"`)
}

func TestObservedLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("resolved chain", "joint", "front_wheel", "depth", 2)
	logger.Infof("hello %s", "world")

	entries := FilterMessage(t, logs, "resolved chain")
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ContextMap()["joint"], test.ShouldEqual, "front_wheel")
	test.That(t, FilterMessage(t, logs, "hello world"), test.ShouldHaveLength, 1)

	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
	logger.Info("dropped")
	test.That(t, FilterMessage(t, logs, "dropped"), test.ShouldHaveLength, 0)
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("kinematics")
	sub.Info("from sub")
	test.That(t, FilterMessage(t, logs, "from sub"), test.ShouldHaveLength, 1)
	test.That(t, logs.FilterMessage("from sub").All()[0].LoggerName, test.ShouldEqual, "kinematics")

	sub.SetLevel(ERROR)
	sub.Warn("quiet")
	logger.Warn("loud")
	test.That(t, FilterMessage(t, logs, "quiet"), test.ShouldHaveLength, 0)
	test.That(t, FilterMessage(t, logs, "loud"), test.ShouldHaveLength, 1)

	blank := NewBlankLogger("blank")
	blank.Error("nowhere")
	test.That(t, blank.Sync(), test.ShouldBeNil)
}
