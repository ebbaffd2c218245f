// Package logx пишет строки лога в формате key=value поверх стандартного log.Logger.
package logx

import (
	"fmt"
	"log"
	"strings"
)

func Info(l *log.Logger, reqID, op, msg string, kv ...any) {
	l.Print(line("info", reqID, op, msg, nil, kv))
}

func Error(l *log.Logger, reqID, op, msg string, err error, kv ...any) {
	l.Print(line("error", reqID, op, msg, err, kv))
}

func line(lvl, reqID, op, msg string, err error, kv []any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "lvl=%s req_id=%s op=%s msg=%q", lvl, reqID, op, msg)
	if err != nil {
		fmt.Fprintf(&sb, " err=%q", err.Error())
	}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			// нечётное число аргументов — ключ без значения
			fmt.Fprintf(&sb, " %s=<missing>", key)
			break
		}
		fmt.Fprintf(&sb, " %s=%s", key, value(kv[i+1]))
	}
	return sb.String()
}

func value(v any) string {
	switch x := v.(type) {
	case string:
		if x == "" || strings.ContainsAny(x, " \t\"=") {
			return fmt.Sprintf("%q", x)
		}
		return x
	case error:
		return fmt.Sprintf("%q", x.Error())
	default:
		return fmt.Sprint(x)
	}
}
