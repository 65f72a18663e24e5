package adapters

import (
	"context"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamoCredentialItem struct {
	Key       string `dynamodbav:"credential_key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt int64  `dynamodbav:"updated_at"`
}

type dynamoCredentialStore struct {
	logger      outbound.LoggerPort
	dynamoSvc   dynamodbiface.DynamoDBAPI
	storeConfig *config.CredentialStoreConfig
}

func NewDynamoCredentialStore(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI, storeConfig *config.CredentialStoreConfig) outbound.CredentialStorePort {
	return &dynamoCredentialStore{
		logger:      logger,
		dynamoSvc:   dynamoSvc,
		storeConfig: storeConfig,
	}
}

func (c *dynamoCredentialStore) Get(ctx context.Context) (string, error) {
	out, err := c.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.storeConfig.TableName),
		Key:            c.itemKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read credential item", map[string]interface{}{
			"table": c.storeConfig.TableName,
		})
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var item dynamoCredentialItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		c.logger.Error(err, "Failed to unmarshal credential item")
		return "", err
	}
	return item.Value, nil
}

func (c *dynamoCredentialStore) Save(ctx context.Context, credential string) error {
	item := dynamoCredentialItem{
		Key:       c.storeConfig.Key,
		Value:     credential,
		UpdatedAt: time.Now().Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.Error(err, "Failed to marshal credential item")
		return err
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.storeConfig.TableName),
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save credential item", map[string]interface{}{
			"table": c.storeConfig.TableName,
		})
		return err
	}
	return nil
}

func (c *dynamoCredentialStore) Delete(ctx context.Context) error {
	_, err := c.dynamoSvc.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.storeConfig.TableName),
		Key:       c.itemKey(),
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to delete credential item", map[string]interface{}{
			"table": c.storeConfig.TableName,
		})
		return err
	}
	return nil
}

func (c *dynamoCredentialStore) itemKey() map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"credential_key": {S: aws.String(c.storeConfig.Key)},
	}
}
