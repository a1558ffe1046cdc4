package offer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"go.mongodb.org/mongo-driver/bson"
)

// createOffer handles the offer.create service request.
func (m *OfferModule) createOffer(ctx context.Context, req CreateOfferRequest, _ *mono.Msg) (Offer, error) {
	if req.Title == "" {
		return Offer{}, fmt.Errorf("title is required")
	}
	if req.DiscountType == "" {
		return Offer{}, fmt.Errorf("discountType is required")
	}
	if !validDiscountType(req.DiscountType) {
		return Offer{}, fmt.Errorf("discountType must be percentage or fixed")
	}
	if req.DiscountValue == nil {
		return Offer{}, fmt.Errorf("discountValue is required")
	}
	if req.StartDate == "" {
		return Offer{}, fmt.Errorf("startDate is required")
	}
	if req.EndDate == "" {
		return Offer{}, fmt.Errorf("endDate is required")
	}

	status := req.Status
	if status == "" {
		status = StatusInactive
	}
	if !validStatus(status) {
		return Offer{}, fmt.Errorf("status must be active, inactive or expired")
	}

	products := req.Products
	if products == nil {
		products = []string{}
	}

	o := Offer{
		Title:         req.Title,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: *req.DiscountValue,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        status,
		Products:      products,
	}
	if err := m.repo.Create(ctx, &o); err != nil {
		return Offer{}, err
	}
	return o, nil
}

// getOffer handles the offer.get service request.
func (m *OfferModule) getOffer(ctx context.Context, req GetOfferRequest, _ *mono.Msg) (Offer, error) {
	o, err := m.repo.FindByID(ctx, req.ID)
	if err != nil {
		return Offer{}, err
	}
	return *o, nil
}

// listOffers handles the offer.list service request.
func (m *OfferModule) listOffers(ctx context.Context, _ ListOffersRequest, _ *mono.Msg) (ListOffersResponse, error) {
	offers, err := m.repo.FindAll(ctx)
	if err != nil {
		return ListOffersResponse{}, err
	}
	return ListOffersResponse{
		Offers: offers,
		Total:  len(offers),
	}, nil
}

// updateOffer handles the offer.update service request.
func (m *OfferModule) updateOffer(ctx context.Context, req UpdateOfferRequest, _ *mono.Msg) (Offer, error) {
	fields := bson.M{}
	if req.Title != nil {
		if *req.Title == "" {
			return Offer{}, fmt.Errorf("title is required")
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DiscountType != nil {
		if !validDiscountType(*req.DiscountType) {
			return Offer{}, fmt.Errorf("discountType must be percentage or fixed")
		}
		fields["discountType"] = *req.DiscountType
	}
	if req.DiscountValue != nil {
		fields["discountValue"] = *req.DiscountValue
	}
	if req.StartDate != nil {
		fields["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["endDate"] = *req.EndDate
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return Offer{}, fmt.Errorf("status must be active, inactive or expired")
		}
		fields["status"] = *req.Status
	}
	if req.Products != nil {
		fields["products"] = *req.Products
	}

	o, err := m.repo.Update(ctx, req.ID, fields)
	if err != nil {
		return Offer{}, err
	}
	return *o, nil
}

// deleteOffer handles the offer.delete service request.
func (m *OfferModule) deleteOffer(ctx context.Context, req DeleteOfferRequest, _ *mono.Msg) (DeleteOfferResponse, error) {
	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteOfferResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteOfferResponse{Deleted: true, ID: req.ID}, nil
}

// expireOutdated is the nightly sweep marking offers past their end date.
func (m *OfferModule) expireOutdated() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().UTC().Format("2006-01-02")
	n, err := m.repo.MarkExpired(ctx, today)
	if err != nil {
		log.Printf("[offer] Expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[offer] Expiry sweep marked %d offer(s) expired", n)
	}
}
