// Package environment names the deployment environment a program runs in
// and carries it through context.Context.
//
// Parse normalizes configuration values, including the short aliases "dev",
// "stage" and "prod". WithContext and FromContext attach and read the value.
// LogExtractor plugs the value into a logger as an "env" attribute.
//
//	env := environment.Parse(os.Getenv("ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//	log := logger.New(logger.WithContextExtractors(environment.LogExtractor))
//	log.InfoContext(ctx, "started") // env=production
//
// Missing values yield the zero Environment (""); nothing in the package
// returns errors.
package environment
