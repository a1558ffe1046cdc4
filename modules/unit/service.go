package unit

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"go.mongodb.org/mongo-driver/bson"
)

// createUnit handles the unit.create service request.
func (m *UnitModule) createUnit(ctx context.Context, req CreateUnitRequest, _ *mono.Msg) (Unit, error) {
	if req.Name == "" {
		return Unit{}, fmt.Errorf("name is required")
	}
	if req.ShortName == "" {
		return Unit{}, fmt.Errorf("shortName is required")
	}

	u := Unit{
		Name:        req.Name,
		ShortName:   req.ShortName,
		Description: req.Description,
	}
	if err := m.repo.Create(ctx, &u); err != nil {
		return Unit{}, err
	}
	return u, nil
}

// getUnit handles the unit.get service request.
func (m *UnitModule) getUnit(ctx context.Context, req GetUnitRequest, _ *mono.Msg) (Unit, error) {
	u, err := m.repo.FindByID(ctx, req.ID)
	if err != nil {
		return Unit{}, err
	}
	return *u, nil
}

// listUnits handles the unit.list service request.
func (m *UnitModule) listUnits(ctx context.Context, _ ListUnitsRequest, _ *mono.Msg) (ListUnitsResponse, error) {
	units, err := m.repo.FindAll(ctx)
	if err != nil {
		return ListUnitsResponse{}, err
	}
	return ListUnitsResponse{
		Units: units,
		Total: len(units),
	}, nil
}

// updateUnit handles the unit.update service request.
func (m *UnitModule) updateUnit(ctx context.Context, req UpdateUnitRequest, _ *mono.Msg) (Unit, error) {
	fields := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return Unit{}, fmt.Errorf("name is required")
		}
		fields["name"] = *req.Name
	}
	if req.ShortName != nil {
		if *req.ShortName == "" {
			return Unit{}, fmt.Errorf("shortName is required")
		}
		fields["shortName"] = *req.ShortName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	u, err := m.repo.Update(ctx, req.ID, fields)
	if err != nil {
		return Unit{}, err
	}
	return *u, nil
}

// deleteUnit handles the unit.delete service request.
func (m *UnitModule) deleteUnit(ctx context.Context, req DeleteUnitRequest, _ *mono.Msg) (DeleteUnitResponse, error) {
	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteUnitResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteUnitResponse{Deleted: true, ID: req.ID}, nil
}
