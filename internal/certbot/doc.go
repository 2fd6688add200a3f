// Package certbot wraps the Certbot command-line tool for obtaining and
// revoking Let's Encrypt certificates.
//
// # Prerequisites
//
// Certbot must be installed on the system:
//
//	# Ubuntu/Debian
//	sudo apt install certbot
//
//	# CentOS/RHEL
//	sudo dnf install certbot
//
// # Basic Usage
//
//	cb := certbot.New("certbot")
//	if !cb.IsInstalled() {
//	    log.Fatal("certbot is not installed")
//	}
//
//	// Webroot issuance (production CA)
//	err := cb.Obtain("example.com", "/var/www/html", false)
//
//	// Revocation against the staging CA
//	err = cb.Revoke("/etc/letsencrypt/live/example.com/cert.pem", true)
//
// Issued material lands in Let's Encrypt's standard layout:
//
//	/etc/letsencrypt/live/{domain}/fullchain.pem
//	/etc/letsencrypt/live/{domain}/privkey.pem
//
// # Error Handling
//
// When certbot exits non-zero the returned error is an errors.CertError
// with code EXTERNAL whose Stderr field holds certbot's error stream
// byte-for-byte. Callers forward it rather than reformatting it; Let's
// Encrypt failure messages (rate limits, failed challenges, DNS issues)
// are only useful in full.
//
// # Testing
//
// Construct the client with a mock executor:
//
//	mockExec := &executor.MockExecutor{}
//	cb := certbot.NewWithExecutor("certbot", mockExec)
package certbot
