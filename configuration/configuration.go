package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Filename          string `usage:"JSON file holding the diary entries"`
	IDFloor           int    `usage:"first id assigned when the diary is empty"`
	CreateIfMissing   bool   `usage:"seed an empty diary file when it does not exist"`
	Statics           string `usage:"statics directory"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	LogLevel          string `usage:"log level: debug, info, warn or error"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:        "127.0.0.1:8080",
		Filename:        "data/entries.json",
		IDFloor:         1,
		CreateIfMissing: true,
		LogLevel:        "info",
		ShowBanner:      true,
	}
}
