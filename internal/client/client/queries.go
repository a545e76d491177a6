package client

// The six fixed queries. Their names, filters and field selections define
// the wire contract with the platform's GraphQL engine; the client never
// builds queries dynamically.

const getUserInfo = `
  query GetUserInfo {
    user {
      id
      attrs
      login
      campus
    }
  }
`

const getAuditRatio = `
  query GetAuditRatio {
    user {
      auditRatio
      totalUp
      totalDown
    }
  }
`

const getXpAmount = `
  query GetXpAmount {
    transaction_aggregate(
      where: {
        event: { path: { _eq: "/bahrain/bh-module" } }
        type: { _eq: "xp" }
      }
    ) {
      aggregate {
        sum {
          amount
        }
      }
    }
  }
`

const getUserLevel = `
  query GetUserLevel {
    transaction(
      order_by: { amount: desc }
      limit: 1
      where: { type: { _eq: "level" }, path: { _like: "/bahrain/bh-module%" } }
    ) {
      amount
    }
  }
`

const getUserProjectXp = `
  query GetUserProjectXp {
    transaction(
      where: { type: { _eq: "xp" }, object: { type: { _eq: "project" } } }
      order_by: { createdAt: asc }
    ) {
      id
      object {
        name
      }
      amount
      createdAt
    }
  }
`

const getUserSkills = `
  query GetUserSkills {
    transaction(
      where: { type: { _like: "skill_%" } }
      order_by: { amount: desc }
    ) {
      type
      amount
    }
  }
`
