// Package config manages the sitecert application configuration stored in
// YAML format.
//
// Configuration is stored in the user's home directory at
// ~/.config/sitecert/config.yaml. A missing file is not an error; Load
// returns the built-in defaults, which match a stock Debian/Ubuntu layout
// of certbot and nginx.
//
// Example config.yaml:
//
//	store_dir: /etc/letsencrypt/live
//	sites_available: /etc/nginx/sites-available
//	sites_enabled: /etc/nginx/sites-enabled
//	webroot: /var/www/html
//	certbot_bin: certbot
//
// Fields left out of a partial config file keep their defaults.
//
// Staging mode is deliberately NOT part of the configuration: it is an
// explicit per-invocation flag on the obtain and revoke commands, so that
// a forgotten config entry can never silently route real issuance through
// the test CA (or the reverse).
//
// # Thread Safety
//
// Config operations are NOT thread-safe. Callers must implement their own
// synchronization if accessing Config from multiple goroutines.
package config
