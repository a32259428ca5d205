// Package secrets resolve credenciais guardadas no AWS Secrets Manager.
//
// Usado pela migração para obter a senha do Redis quando a configuração
// aponta para um secret em vez de trazer a senha em texto plano.
package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerClient abstrai o cliente do SDK para facilitar testes.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver busca secrets por ARN ou nome.
type Resolver struct {
	client SecretsManagerClient
}

// NewResolver cria um Resolver sobre o cliente informado.
func NewResolver(client SecretsManagerClient) *Resolver {
	return &Resolver{client: client}
}

// Resolve retorna o valor do secret como string.
func (r *Resolver) Resolve(ctx context.Context, secretID string) (string, error) {
	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("secrets: get %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secrets: %s does not contain a string value", secretID)
	}
	return *out.SecretString, nil
}
