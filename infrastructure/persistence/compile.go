package persistence

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/query"
)

var knownCollections = map[string]struct{}{
	query.Users:         {},
	query.Videos:        {},
	query.Tweets:        {},
	query.Comments:      {},
	query.Likes:         {},
	query.Subscriptions: {},
	query.Sessions:      {},
}

// compile interprets a store-agnostic view into a driver pipeline. A
// reference to an unknown collection is a configuration error, never a
// user-facing one.
func compile(v query.View) (mongo.Pipeline, error) {
	if _, ok := knownCollections[v.Collection]; !ok {
		return nil, fmt.Errorf("unknown base collection %q", v.Collection)
	}
	return compileStages(v.Stages)
}

func compileStages(stages []query.Stage) (mongo.Pipeline, error) {
	pipeline := make(mongo.Pipeline, 0, len(stages))
	for _, s := range stages {
		switch st := s.(type) {
		case query.Match:
			filter, err := compileConds(st.Conds)
			if err != nil {
				return nil, err
			}
			pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter}})
		case query.Lookup:
			if _, ok := knownCollections[st.From]; !ok {
				return nil, fmt.Errorf("lookup references unknown collection %q", st.From)
			}
			lookup := bson.D{
				{Key: "from", Value: st.From},
				{Key: "localField", Value: st.LocalField},
				{Key: "foreignField", Value: st.ForeignField},
				{Key: "as", Value: st.As},
			}
			if len(st.Pipeline) > 0 {
				sub, err := compileStages(st.Pipeline)
				if err != nil {
					return nil, err
				}
				lookup = append(lookup, bson.E{Key: "pipeline", Value: sub})
			}
			pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: lookup}})
		case query.Unwind:
			pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: "$" + st.Path}})
		case query.Derive:
			fields := bson.D{}
			for _, f := range st.Fields {
				expr, err := compileExpr(f.Expr)
				if err != nil {
					return nil, err
				}
				fields = append(fields, bson.E{Key: f.Name, Value: expr})
			}
			pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: fields}})
		case query.Sort:
			pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: st.Field, Value: int(st.Direction)}}}})
		case query.Project:
			fields := bson.D{}
			for _, f := range st.Fields {
				fields = append(fields, bson.E{Key: f, Value: 1})
			}
			pipeline = append(pipeline, bson.D{{Key: "$project", Value: fields}})
		case query.Skip:
			pipeline = append(pipeline, bson.D{{Key: "$skip", Value: st.N}})
		case query.Limit:
			pipeline = append(pipeline, bson.D{{Key: "$limit", Value: st.N}})
		case query.CountAll:
			pipeline = append(pipeline, bson.D{{Key: "$count", Value: st.As}})
		case query.Group:
			group := bson.D{{Key: "_id", Value: nil}}
			for _, sum := range st.Sums {
				expr, err := compileExpr(sum.Expr)
				if err != nil {
					return nil, err
				}
				group = append(group, bson.E{Key: sum.Name, Value: expr})
			}
			pipeline = append(pipeline, bson.D{{Key: "$group", Value: group}})
		default:
			return nil, fmt.Errorf("unsupported stage %T", s)
		}
	}
	return pipeline, nil
}

func compileConds(conds []query.Cond) (bson.D, error) {
	filter := bson.D{}
	for _, c := range conds {
		switch cond := c.(type) {
		case query.Eq:
			value, err := resolveValue(cond.Value)
			if err != nil {
				return nil, err
			}
			filter = append(filter, bson.E{Key: cond.Field, Value: value})
		case query.Exists:
			filter = append(filter, bson.E{Key: cond.Field, Value: bson.D{{Key: "$exists", Value: true}}})
		case query.TextSearch:
			or := bson.A{}
			for _, field := range cond.Fields {
				or = append(or, bson.D{{Key: field, Value: bson.D{
					{Key: "$regex", Value: cond.Term},
					{Key: "$options", Value: "i"},
				}}})
			}
			filter = append(filter, bson.E{Key: "$or", Value: or})
		default:
			return nil, fmt.Errorf("unsupported condition %T", c)
		}
	}
	return filter, nil
}

func compileExpr(e query.Expr) (any, error) {
	switch expr := e.(type) {
	case query.Count:
		return bson.D{{Key: "$size", Value: "$" + expr.Field}}, nil
	case query.First:
		return bson.D{{Key: "$first", Value: "$" + expr.Field}}, nil
	case query.Last:
		return bson.D{{Key: "$last", Value: "$" + expr.Field}}, nil
	case query.ContainsViewer:
		if expr.ViewerID == "" {
			// Anonymous viewer: the flag is constant false, never an error.
			return false, nil
		}
		viewer, err := bson.ObjectIDFromHex(expr.ViewerID)
		if err != nil {
			return nil, fmt.Errorf("viewer id %q: %w", expr.ViewerID, err)
		}
		return bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$" + expr.Path}}}},
			{Key: "then", Value: true},
			{Key: "else", Value: false},
		}}}, nil
	case query.SumField:
		return bson.D{{Key: "$sum", Value: "$" + expr.Field}}, nil
	case query.SumOne:
		return bson.D{{Key: "$sum", Value: 1}}, nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", e)
	}
}

func resolveValue(v any) (any, error) {
	if oid, ok := v.(query.OID); ok {
		id, err := bson.ObjectIDFromHex(string(oid))
		if err != nil {
			return nil, fmt.Errorf("object id %q: %w", string(oid), err)
		}
		return id, nil
	}
	return v, nil
}
