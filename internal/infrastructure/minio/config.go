package minio

type ClientConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string
	SecretKey string
	UseSSL    bool `yaml:"use_ssl"`
}

type UploaderConfig struct {
	Bucket string `yaml:"bucket"`
	// PublicURL is the externally reachable base the stored object is
	// served from, e.g. a CDN or the MinIO endpoint itself.
	PublicURL string `yaml:"public_url"`
	Timeout   int    `yaml:"timeout_in_ms"`
}
