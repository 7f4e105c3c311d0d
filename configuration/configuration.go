package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory with .dbf tables"`
	ReadOnly          bool   `usage:"open every table read only"`
	Statics           string `usage:"statics directory"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
	EnableCompression bool   `usage:"gzip responses"`
	HttpsEnabled      bool   `usage:"serve TLS"`
	HttpsSelfsigned   bool   `usage:"use an in-memory self signed certificate"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:   ":8080",
		Dir:        "data",
		ShowBanner: true,
	}
}
