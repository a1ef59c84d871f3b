package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims de un enlace de descarga firmado: la clave del archivo en el blob store
// y quién lo subió, más los claims estándar (emisor, expiración).
type Claims struct {
	jwt.RegisteredClaims
	FileKey    string `json:"file_key"`
	UploadedBy string `json:"uploaded_by,omitempty"`
}

// Generate firma (HS256) un token de descarga para fileKey que vence en ttl.
func Generate(secret, fileKey, uploadedBy, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if fileKey == "" {
		return "", fmt.Errorf("jwt: file key vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fileKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		FileKey:    fileKey,
		UploadedBy: uploadedBy,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la clave del archivo.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (fileKey string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.FileKey == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.FileKey, nil
}
