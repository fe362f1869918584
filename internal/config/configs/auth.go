package configs

// Auth configures verification of the bearer tokens issued by the identity
// service. Tokens are HS256-signed and carry the provider id, display name
// and admin flag.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,required"`
}
