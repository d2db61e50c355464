package device

// StaticReader serves fixed device readings. Used on hosts without a real
// device probe (API deployments, CLI, tests).
type StaticReader struct {
	Battery       float64
	LowPower      bool
	NetworkDown   bool
	LocaleTag     string
	Brightness    int
	Volume        int
	Model         string
	StorageFreeGB float64
}

// NewStaticReader returns a reader with sane defaults for any zero fields.
func NewStaticReader(cfg StaticReader) *StaticReader {
	if cfg.Battery == 0 {
		cfg.Battery = 1.0
	}
	if cfg.LocaleTag == "" {
		cfg.LocaleTag = "en-US"
	}
	if cfg.Brightness == 0 {
		cfg.Brightness = 50
	}
	if cfg.Volume == 0 {
		cfg.Volume = 50
	}
	if cfg.Model == "" {
		cfg.Model = "virtual-device"
	}
	return &cfg
}

func (r *StaticReader) BatteryLevel() float64        { return r.Battery }
func (r *StaticReader) IsLowPowerMode() bool         { return r.LowPower }
func (r *StaticReader) IsNetworkUnavailable() bool   { return r.NetworkDown }
func (r *StaticReader) Locale() string               { return r.LocaleTag }
func (r *StaticReader) BrightnessPercent() int       { return r.Brightness }
func (r *StaticReader) VolumePercent() int           { return r.Volume }
func (r *StaticReader) ModelName() string            { return r.Model }
func (r *StaticReader) StorageAvailableGB() float64  { return r.StorageFreeGB }
