package repository

import (
	"context"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventosTableName = "solicitacao_eventos"
	eventosBySolicitacao    = "solicitacao_id-index"
)

type eventoItem struct {
	ID             string `dynamodbav:"id"`
	SolicitacaoID  string `dynamodbav:"solicitacao_id"`
	Tipo           string `dynamodbav:"tipo_evento"`
	StatusAnterior string `dynamodbav:"status_anterior"`
	StatusNovo     string `dynamodbav:"status_novo"`
	Comentario     string `dynamodbav:"comentario"`
	ActorUsuarioID int64  `dynamodbav:"actor_usuario_id"`
	CriadoEm       string `dynamodbav:"criado_em"`
}

// EventoDynamoRepository persists the append-only audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (solicitacao_id-index): HASH solicitacao_id, RANGE criado_em
//
// Events are only ever inserted; there is no update or delete path.
type EventoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventoRepository = (*EventoDynamoRepository)(nil)

func NewEventoDynamoRepository(ddb *dynamodb.Client) *EventoDynamoRepository {
	return &EventoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SOLICITACAO_EVENTOS_TABLE", defaultEventosTableName),
	}
}

func (r *EventoDynamoRepository) Append(ctx context.Context, ev entities.SolicitacaoEvento) (entities.SolicitacaoEvento, error) {
	av, err := attributevalue.MarshalMap(toEventoItem(ev))
	if err != nil {
		return entities.SolicitacaoEvento{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.SolicitacaoEvento{}, err
	}
	return ev, nil
}

func (r *EventoDynamoRepository) ListBySolicitacaoID(ctx context.Context, solicitacaoID string) ([]entities.SolicitacaoEvento, error) {
	var eventos []entities.SolicitacaoEvento
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(eventosBySolicitacao),
			KeyConditionExpression: aws.String("#sid = :sid"),
			ExpressionAttributeNames: map[string]string{
				"#sid": "solicitacao_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: solicitacaoID},
			},
			// criado_em is the range key; ascending gives the audit order.
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []eventoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			eventos = append(eventos, fromEventoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return eventos, nil
}

func toEventoItem(ev entities.SolicitacaoEvento) eventoItem {
	return eventoItem{
		ID:             ev.ID,
		SolicitacaoID:  ev.SolicitacaoID,
		Tipo:           string(ev.Tipo),
		StatusAnterior: string(ev.StatusAnterior),
		StatusNovo:     string(ev.StatusNovo),
		Comentario:     ev.Comentario,
		ActorUsuarioID: ev.ActorUsuarioID,
		CriadoEm:       formatTime(ev.CriadoEm),
	}
}

func fromEventoItem(it eventoItem) entities.SolicitacaoEvento {
	return entities.SolicitacaoEvento{
		ID:             it.ID,
		SolicitacaoID:  it.SolicitacaoID,
		Tipo:           entities.TipoEvento(it.Tipo),
		StatusAnterior: entities.StatusSolicitacao(it.StatusAnterior),
		StatusNovo:     entities.StatusSolicitacao(it.StatusNovo),
		Comentario:     it.Comentario,
		ActorUsuarioID: it.ActorUsuarioID,
		CriadoEm:       parseTime(it.CriadoEm),
	}
}
