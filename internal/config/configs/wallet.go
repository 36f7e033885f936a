package configs

// Wallet configures the local keystore wallet. With an empty KeystoreDir
// there are no accounts and no account can be connected.
type Wallet struct {
	KeystoreDir string `env:"KEYSTORE_DIR"`
	Passphrase  string `env:"PASSPHRASE"`
	// Account, when set, is connected at startup.
	Account string `env:"ACCOUNT"`
}
