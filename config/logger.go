package config

type Logger struct {
	Level    *string `json:"level"`
	Mode     *string `json:"mode"`
	Filename *string `json:"filename"`
}

func (l *Logger) setDefaults() {
	if l.Level == nil {
		l.Level = newString("info")
	}
	if l.Mode == nil {
		l.Mode = newString("stdout")
	}
	if l.Filename == nil {
		l.Filename = newString("flexpool-info.log")
	}
}
