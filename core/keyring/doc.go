// Package keyring stores provider API keys in the registry database and
// rotates through them.
//
// Each provider has a key_<provider> table. A Ring tries keys in turn, paced
// by a rate limiter; a key that fails rests for the provider timeout (15
// minutes for Twitter, a day for NewsAPI and Google, a month for IGDB).
// Rotation is bounded: once every key has failed or is resting the call ends
// with ErrKeyExhausted instead of cycling forever.
package keyring
