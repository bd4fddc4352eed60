//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/akornfellner/go-ecc/pkg/ecc"
	"github.com/akornfellner/go-ecc/pkg/ecdh"
	"github.com/akornfellner/go-ecc/pkg/ecdsa"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS. Every function takes a single JSON string
	// argument and returns a JSON string; big integers travel as hex.
	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKeyPair":    js.FuncOf(GenerateKeyPair),
		"Sign":               js.FuncOf(Sign),
		"Verify":             js.FuncOf(Verify),
		"DeriveSharedSecret": js.FuncOf(DeriveSharedSecret),
	})

	<-c
}

func curveByName(name string) (*ecc.Curve, error) {
	switch name {
	case "", "secp256k1":
		return ecc.Secp256k1(), nil
	case "P-256", "p256":
		return ecc.P256(), nil
	case "P-384", "p384":
		return ecc.P384(), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

func parseHex(s, label string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex in %s", label)
	}
	return v, nil
}

func fail(err error) string {
	out, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(out)
}

func ok(v interface{}) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fail(err)
	}
	return string(out)
}

// GenerateKeyPair draws a key pair on the requested curve.
// Input: {"curve": "secp256k1"}
// Output: {"d": hex, "x": hex, "y": hex}
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return fail(fmt.Errorf("expected 1 argument (jsonParams)"))
	}

	var input struct {
		Curve string `json:"curve"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fail(fmt.Errorf("invalid json: %w", err))
	}

	curve, err := curveByName(input.Curve)
	if err != nil {
		return fail(err)
	}
	kp, err := curve.GenerateKeyPair(rand.Reader)
	if err != nil {
		return fail(err)
	}

	return ok(map[string]string{
		"d": kp.D.Text(16),
		"x": kp.Public.X.Text(16),
		"y": kp.Public.Y.Text(16),
	})
}

// Sign signs a message digest.
// Input: {"curve": ..., "d": hex, "digest": hex}
// Output: {"r": hex, "s": hex}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return fail(fmt.Errorf("expected 1 argument (jsonParams)"))
	}

	var input struct {
		Curve  string `json:"curve"`
		D      string `json:"d"`
		Digest string `json:"digest"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fail(fmt.Errorf("invalid json: %w", err))
	}

	curve, err := curveByName(input.Curve)
	if err != nil {
		return fail(err)
	}
	d, err := parseHex(input.D, "d")
	if err != nil {
		return fail(err)
	}
	z, err := parseHex(input.Digest, "digest")
	if err != nil {
		return fail(err)
	}

	sig, err := ecdsa.Sign(rand.Reader, curve, d, z.Bytes())
	if err != nil {
		return fail(err)
	}
	return ok(map[string]string{"r": sig.R.Text(16), "s": sig.S.Text(16)})
}

// Verify checks a signature against a public key.
// Input: {"curve": ..., "x": hex, "y": hex, "digest": hex, "r": hex, "s": hex}
// Output: {"valid": bool}
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return fail(fmt.Errorf("expected 1 argument (jsonParams)"))
	}

	var input struct {
		Curve  string `json:"curve"`
		X      string `json:"x"`
		Y      string `json:"y"`
		Digest string `json:"digest"`
		R      string `json:"r"`
		S      string `json:"s"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fail(fmt.Errorf("invalid json: %w", err))
	}

	curve, err := curveByName(input.Curve)
	if err != nil {
		return fail(err)
	}

	coords := map[string]*big.Int{}
	for label, s := range map[string]string{"x": input.X, "y": input.Y, "digest": input.Digest, "r": input.R, "s": input.S} {
		v, err := parseHex(s, label)
		if err != nil {
			return fail(err)
		}
		coords[label] = v
	}

	pub, err := curve.NewPoint(coords["x"], coords["y"])
	if err != nil {
		return fail(err)
	}

	valid, err := ecdsa.Verify(curve, pub, coords["digest"].Bytes(), &ecdsa.Signature{R: coords["r"], S: coords["s"]})
	if err != nil {
		return fail(err)
	}
	return ok(map[string]bool{"valid": valid})
}

// DeriveSharedSecret computes the ECDH shared point.
// Input: {"curve": ..., "d": hex, "peerX": hex, "peerY": hex}
// Output: {"x": hex, "y": hex}
func DeriveSharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return fail(fmt.Errorf("expected 1 argument (jsonParams)"))
	}

	var input struct {
		Curve string `json:"curve"`
		D     string `json:"d"`
		PeerX string `json:"peerX"`
		PeerY string `json:"peerY"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fail(fmt.Errorf("invalid json: %w", err))
	}

	curve, err := curveByName(input.Curve)
	if err != nil {
		return fail(err)
	}
	d, err := parseHex(input.D, "d")
	if err != nil {
		return fail(err)
	}
	px, err := parseHex(input.PeerX, "peerX")
	if err != nil {
		return fail(err)
	}
	py, err := parseHex(input.PeerY, "peerY")
	if err != nil {
		return fail(err)
	}

	peer, err := curve.NewPoint(px, py)
	if err != nil {
		return fail(err)
	}
	secret, err := ecdh.DeriveSharedSecret(d, peer, curve)
	if err != nil {
		return fail(err)
	}
	return ok(map[string]string{"x": secret.X.Text(16), "y": secret.Y.Text(16)})
}
