package repository

import (
	"context"
	"strings"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultDocumentosTableName = "documentos"

type precificacaoItem struct {
	UsuarioID int64  `dynamodbav:"usuario_id"`
	Valor     string `dynamodbav:"valor"`
}

type documentoItem struct {
	ID               string             `dynamodbav:"id"`
	Nome             string             `dynamodbav:"nome"`
	Ativo            bool               `dynamodbav:"ativo"`
	DocumentistasIDs []int64            `dynamodbav:"documentistas_ids"`
	Precificacoes    []precificacaoItem `dynamodbav:"precificacoes"`
	CriadoEm         string             `dynamodbav:"criado_em"`
	AtualizadoEm     string             `dynamodbav:"atualizado_em"`
}

// nomeMarkerItem reserves a document name. It lives in the documentos table
// under id "nome#<lowercase nome>" and is written in the same transaction as
// the document row, which is what makes renames and concurrent creates safe.
type nomeMarkerItem struct {
	ID          string `dynamodbav:"id"`
	DocumentoID string `dynamodbav:"documento_id"`
}

// DocumentoDynamoRepository persists Documento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Document rows carry a nome attribute; marker rows do not, which is how
// List tells them apart.
type DocumentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentoRepository = (*DocumentoDynamoRepository)(nil)

func NewDocumentoDynamoRepository(ddb *dynamodb.Client) *DocumentoDynamoRepository {
	return &DocumentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTOS_TABLE", defaultDocumentosTableName),
	}
}

func nomeMarkerKey(nome string) string {
	return "nome#" + strings.ToLower(strings.TrimSpace(nome))
}

func (r *DocumentoDynamoRepository) Create(ctx context.Context, d entities.Documento) (entities.Documento, error) {
	docAV, err := attributevalue.MarshalMap(toDocumentoItem(d))
	if err != nil {
		return entities.Documento{}, err
	}
	markerAV, err := attributevalue.MarshalMap(nomeMarkerItem{ID: nomeMarkerKey(d.Nome), DocumentoID: d.ID})
	if err != nil {
		return entities.Documento{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     docAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     markerAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if transactConditionFailed(err) {
			return entities.Documento{}, nil
		}
		return entities.Documento{}, err
	}
	return d, nil
}

func (r *DocumentoDynamoRepository) Update(ctx context.Context, d entities.Documento, nomeAnterior string) (entities.Documento, error) {
	docAV, err := attributevalue.MarshalMap(toDocumentoItem(d))
	if err != nil {
		return entities.Documento{}, err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     docAV,
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}

	if nomeMarkerKey(d.Nome) != nomeMarkerKey(nomeAnterior) {
		markerAV, err := attributevalue.MarshalMap(nomeMarkerItem{ID: nomeMarkerKey(d.Nome), DocumentoID: d.ID})
		if err != nil {
			return entities.Documento{}, err
		}
		items = append(items,
			types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     markerAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: nomeMarkerKey(nomeAnterior)},
				},
			}},
		)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if transactConditionFailed(err) {
			return entities.Documento{}, nil
		}
		return entities.Documento{}, err
	}
	return d, nil
}

func (r *DocumentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Documento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Documento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Documento{}, nil
	}

	var it documentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Documento{}, err
	}
	return fromDocumentoItem(it), nil
}

func (r *DocumentoDynamoRepository) List(ctx context.Context) ([]entities.Documento, error) {
	// Marker rows have no nome attribute; only real documents survive the
	// filter.
	expr, err := expression.NewBuilder().
		WithFilter(expression.AttributeExists(expression.Name("nome"))).
		Build()
	if err != nil {
		return nil, err
	}

	var docs []entities.Documento
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []documentoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			docs = append(docs, fromDocumentoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return docs, nil
}

func toDocumentoItem(d entities.Documento) documentoItem {
	precs := make([]precificacaoItem, 0, len(d.Precificacoes))
	for _, p := range d.Precificacoes {
		precs = append(precs, precificacaoItem{UsuarioID: p.UsuarioID, Valor: p.Valor.String()})
	}
	return documentoItem{
		ID:               d.ID,
		Nome:             d.Nome,
		Ativo:            d.Ativo,
		DocumentistasIDs: d.DocumentistasIDs,
		Precificacoes:    precs,
		CriadoEm:         formatTime(d.CriadoEm),
		AtualizadoEm:     formatTime(d.AtualizadoEm),
	}
}

func fromDocumentoItem(it documentoItem) entities.Documento {
	precs := make([]entities.Precificacao, 0, len(it.Precificacoes))
	for _, p := range it.Precificacoes {
		valor, _ := decimal.NewFromString(p.Valor)
		precs = append(precs, entities.Precificacao{UsuarioID: p.UsuarioID, Valor: valor})
	}
	return entities.Documento{
		ID:               it.ID,
		Nome:             it.Nome,
		Ativo:            it.Ativo,
		DocumentistasIDs: it.DocumentistasIDs,
		Precificacoes:    precs,
		CriadoEm:         parseTime(it.CriadoEm),
		AtualizadoEm:     parseTime(it.AtualizadoEm),
	}
}
