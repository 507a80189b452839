package repository

import (
	"context"
	"fmt"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSolicitacoesTableName = "solicitacoes"

type solicitacaoItem struct {
	ID             string  `dynamodbav:"id"`
	OSID           int64   `dynamodbav:"os_id"`
	DocumentoID    string  `dynamodbav:"documento_id"`
	DocumentistaID int64   `dynamodbav:"documentista_id"`
	Status         string  `dynamodbav:"status"`
	ProvaEnvio     string  `dynamodbav:"prova_envio"`
	Ativo          bool    `dynamodbav:"ativo"`
	Segmento       string  `dynamodbav:"segmento"`
	LancamentoIDs  []int64 `dynamodbav:"lancamento_ids"`
	CriadoEm       string  `dynamodbav:"criado_em"`
	AtualizadoEm   string  `dynamodbav:"atualizado_em"`
	RecebidoEm     string  `dynamodbav:"recebido_em"`
	FinalizadoEm   string  `dynamodbav:"finalizado_em"`
}

// pairMarkerItem reserves the (os_id, documento_id) pair under id
// "os#<osId>#doc#<documentoId>". Written in the same transaction as the
// solicitacao row, so a losing concurrent create fails the whole transaction.
type pairMarkerItem struct {
	ID            string `dynamodbav:"id"`
	SolicitacaoID string `dynamodbav:"solicitacao_id"`
}

// SolicitacaoDynamoRepository persists Solicitacao entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lifecycle writes go through TransactWriteItems so the solicitacao mutation
// and its audit event commit together. Solicitacao rows carry a status
// attribute; pair-marker rows do not, which is how List tells them apart.
type SolicitacaoDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	eventosTable string
}

var _ interfaces.ISolicitacaoRepository = (*SolicitacaoDynamoRepository)(nil)

func NewSolicitacaoDynamoRepository(ddb *dynamodb.Client) *SolicitacaoDynamoRepository {
	return &SolicitacaoDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("SOLICITACOES_TABLE", defaultSolicitacoesTableName),
		eventosTable: getenvDefault("SOLICITACAO_EVENTOS_TABLE", defaultEventosTableName),
	}
}

func pairMarkerKey(osID int64, documentoID string) string {
	return fmt.Sprintf("os#%d#doc#%s", osID, documentoID)
}

func (r *SolicitacaoDynamoRepository) CreateWithEvento(ctx context.Context, s entities.Solicitacao, ev entities.SolicitacaoEvento) (entities.Solicitacao, error) {
	solAV, err := attributevalue.MarshalMap(toSolicitacaoItem(s))
	if err != nil {
		return entities.Solicitacao{}, err
	}
	markerAV, err := attributevalue.MarshalMap(pairMarkerItem{
		ID:            pairMarkerKey(s.OSID, s.DocumentoID),
		SolicitacaoID: s.ID,
	})
	if err != nil {
		return entities.Solicitacao{}, err
	}
	evAV, err := attributevalue.MarshalMap(toEventoItem(ev))
	if err != nil {
		return entities.Solicitacao{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     solAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     markerAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.eventosTable),
				Item:      evAV,
			}},
		},
	})
	if err != nil {
		if transactConditionFailed(err) {
			return entities.Solicitacao{}, nil
		}
		return entities.Solicitacao{}, err
	}
	return s, nil
}

func (r *SolicitacaoDynamoRepository) UpdateWithEvento(ctx context.Context, s entities.Solicitacao, expectedStatus entities.StatusSolicitacao, ev entities.SolicitacaoEvento) (entities.Solicitacao, error) {
	solAV, err := attributevalue.MarshalMap(toSolicitacaoItem(s))
	if err != nil {
		return entities.Solicitacao{}, err
	}
	evAV, err := attributevalue.MarshalMap(toEventoItem(ev))
	if err != nil {
		return entities.Solicitacao{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                solAV,
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
				},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.eventosTable),
				Item:      evAV,
			}},
		},
	})
	if err != nil {
		if transactConditionFailed(err) {
			return entities.Solicitacao{}, nil
		}
		return entities.Solicitacao{}, err
	}
	return s, nil
}

func (r *SolicitacaoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Solicitacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Solicitacao{}, nil
	}

	var it solicitacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Solicitacao{}, err
	}
	return fromSolicitacaoItem(it), nil
}

func (r *SolicitacaoDynamoRepository) List(ctx context.Context, filtro interfaces.FiltroSolicitacao) ([]entities.Solicitacao, error) {
	filter := expression.AttributeExists(expression.Name("status"))
	if filtro.OSID > 0 {
		filter = filter.And(expression.Name("os_id").Equal(expression.Value(filtro.OSID)))
	}
	if filtro.Status != "" {
		filter = filter.And(expression.Name("status").Equal(expression.Value(string(filtro.Status))))
	}
	if filtro.DocumentistaID > 0 {
		filter = filter.And(expression.Name("documentista_id").Equal(expression.Value(filtro.DocumentistaID)))
	}
	if filtro.Segmento != "" {
		filter = filter.And(expression.Name("segmento").Equal(expression.Value(filtro.Segmento)))
	}

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}

	var list []entities.Solicitacao
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

		var items []solicitacaoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			list = append(list, fromSolicitacaoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return list, nil
}

func toSolicitacaoItem(s entities.Solicitacao) solicitacaoItem {
	return solicitacaoItem{
		ID:             s.ID,
		OSID:           s.OSID,
		DocumentoID:    s.DocumentoID,
		DocumentistaID: s.DocumentistaID,
		Status:         string(s.Status),
		ProvaEnvio:     s.ProvaEnvio,
		Ativo:          s.Ativo,
		Segmento:       s.Segmento,
		LancamentoIDs:  s.LancamentoIDs,
		CriadoEm:       formatTime(s.CriadoEm),
		AtualizadoEm:   formatTime(s.AtualizadoEm),
		RecebidoEm:     formatTimePtr(s.RecebidoEm),
		FinalizadoEm:   formatTimePtr(s.FinalizadoEm),
	}
}

func fromSolicitacaoItem(it solicitacaoItem) entities.Solicitacao {
	return entities.Solicitacao{
		ID:             it.ID,
		OSID:           it.OSID,
		DocumentoID:    it.DocumentoID,
		DocumentistaID: it.DocumentistaID,
		Status:         entities.StatusSolicitacao(it.Status),
		ProvaEnvio:     it.ProvaEnvio,
		Ativo:          it.Ativo,
		Segmento:       it.Segmento,
		LancamentoIDs:  it.LancamentoIDs,
		CriadoEm:       parseTime(it.CriadoEm),
		AtualizadoEm:   parseTime(it.AtualizadoEm),
		RecebidoEm:     parseTimePtr(it.RecebidoEm),
		FinalizadoEm:   parseTimePtr(it.FinalizadoEm),
	}
}
